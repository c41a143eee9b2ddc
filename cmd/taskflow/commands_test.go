// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// Tests for the command tree wiring.

package main

import (
	"testing"

	"github.com/spf13/cobra"
)

func findCommand(parent *cobra.Command, name string) *cobra.Command {
	for _, c := range parent.Commands() {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

func TestRootCommand_HasEverySubcommand(t *testing.T) {
	for _, name := range []string{
		"login", "register", "logout", "whoami",
		"task", "category", "status", "board",
	} {
		if findCommand(rootCmd, name) == nil {
			t.Errorf("rootCmd is missing %q", name)
		}
	}
}

func TestTaskCommand_HasCRUDSubcommands(t *testing.T) {
	for _, name := range []string{"list", "add", "edit", "done", "rm"} {
		if findCommand(taskCmd, name) == nil {
			t.Errorf("task is missing %q", name)
		}
	}
}

func TestCategoryCommand_HasCRUDSubcommands(t *testing.T) {
	for _, name := range []string{"list", "add", "edit", "rm"} {
		if findCommand(categoryCmd, name) == nil {
			t.Errorf("category is missing %q", name)
		}
	}
}

func TestCategoryCommand_HasCatAlias(t *testing.T) {
	if !categoryCmd.HasAlias("cat") {
		t.Error("expected `taskflow cat` to work")
	}
}

func TestDestructiveCommands_HaveYesFlag(t *testing.T) {
	for _, cmd := range []*cobra.Command{taskRmCmd, categoryRmCmd} {
		if cmd.Flags().Lookup("yes") == nil {
			t.Errorf("%s has no --yes flag", cmd.Name())
		}
	}
}

func TestGlobalFlags_AreRegistered(t *testing.T) {
	for _, name := range []string{"server", "config"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("rootCmd is missing the --%s flag", name)
		}
	}
}

func TestTaskListFlags_MatchBoardFilters(t *testing.T) {
	for _, name := range []string{"view", "sort", "priority", "search"} {
		if taskListCmd.Flags().Lookup(name) == nil {
			t.Errorf("task list is missing the --%s flag", name)
		}
	}
}
