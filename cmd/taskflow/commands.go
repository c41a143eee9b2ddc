// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"github.com/AleutianAI/taskflow/pkg/ux"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "taskflow",
		Short: "A terminal client for the TaskFlow task manager",
		Long: `TaskFlow keeps your tasks on a TaskFlow server and gives you two ways in:
scriptable subcommands for one-shot work, and an interactive board (run
'taskflow board', or just 'taskflow' once you are signed in).`,
		Run: runRootCommand,
	}
	serverFlag string
	configFlag string

	// --- Session ---
	loginCmd = &cobra.Command{
		Use:   "login [username]",
		Short: "Sign in and store the session token",
		Args:  cobra.MaximumNArgs(1),
		Run:   runLoginCommand,
	}
	registerCmd = &cobra.Command{
		Use:   "register [username]",
		Short: "Create an account and sign in",
		Args:  cobra.MaximumNArgs(1),
		Run:   runRegisterCommand,
	}
	logoutCmd = &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		Run:   runLogoutCommand,
	}
	whoamiCmd = &cobra.Command{
		Use:   "whoami",
		Short: "Show who the stored session belongs to",
		Args:  cobra.NoArgs,
		Run:   runWhoamiCommand,
	}
	authPassword string

	// --- Tasks ---
	taskCmd = &cobra.Command{
		Use:   "task",
		Short: "Work with tasks from the shell",
	}
	taskListCmd = &cobra.Command{
		Use:   "list",
		Short: "List tasks with the same filters the board uses",
		Args:  cobra.NoArgs,
		Run:   runTaskListCommand,
	}
	taskAddCmd = &cobra.Command{
		Use:   "add [title]",
		Short: "Create a task",
		Args:  cobra.MinimumNArgs(1),
		Run:   runTaskAddCommand,
	}
	taskEditCmd = &cobra.Command{
		Use:   "edit [id]",
		Short: "Change fields of an existing task",
		Args:  cobra.ExactArgs(1),
		Run:   runTaskEditCommand,
	}
	taskDoneCmd = &cobra.Command{
		Use:   "done [id]",
		Short: "Mark a task done (or pending again with --undo)",
		Args:  cobra.ExactArgs(1),
		Run:   runTaskDoneCommand,
	}
	taskRmCmd = &cobra.Command{
		Use:   "rm [id]",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		Run:   runTaskRmCommand,
	}
	taskView     string
	taskSort     string
	taskPriority string
	taskSearch   string
	taskDesc     string
	taskCategory string
	taskDue      string
	taskTitle    string
	taskUndo     bool
	assumeYes    bool

	// --- Categories ---
	categoryCmd = &cobra.Command{
		Use:     "category",
		Aliases: []string{"cat"},
		Short:   "Work with categories from the shell",
	}
	categoryListCmd = &cobra.Command{
		Use:   "list",
		Short: "List categories with their task counts",
		Args:  cobra.NoArgs,
		Run:   runCategoryListCommand,
	}
	categoryAddCmd = &cobra.Command{
		Use:   "add [name]",
		Short: "Create a category",
		Args:  cobra.MinimumNArgs(1),
		Run:   runCategoryAddCommand,
	}
	categoryEditCmd = &cobra.Command{
		Use:   "edit [id or name]",
		Short: "Rename or recolor a category",
		Args:  cobra.ExactArgs(1),
		Run:   runCategoryEditCommand,
	}
	categoryRmCmd = &cobra.Command{
		Use:   "rm [id or name]",
		Short: "Delete a category (refused while tasks still use it)",
		Args:  cobra.ExactArgs(1),
		Run:   runCategoryRmCommand,
	}
	categoryColor string
	categoryName  string

	// --- Server ---
	statusCmd = &cobra.Command{
		Use:   "status",
		Short: "Check whether the server is reachable and who is signed in",
		Args:  cobra.NoArgs,
		Run:   runStatusCommand,
	}

	// --- Board ---
	boardCmd = &cobra.Command{
		Use:   "board",
		Short: "Open the interactive board",
		Args:  cobra.NoArgs,
		Run:   runBoardCommand,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&serverFlag, "server", "",
		"Server base URL (overrides TASKFLOW_SERVER and the config file)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "",
		"Config file path (default ~/.taskflow/taskflow.yaml)")

	// session commands
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	loginCmd.Flags().StringVar(&authPassword, "password", "",
		"Password (falls back to TASKFLOW_PASSWORD, then prompts on a terminal)")
	registerCmd.Flags().StringVar(&authPassword, "password", "",
		"Password (falls back to TASKFLOW_PASSWORD, then prompts on a terminal)")

	// task commands
	rootCmd.AddCommand(taskCmd)
	taskCmd.AddCommand(taskListCmd)
	taskListCmd.Flags().StringVar(&taskView, "view", "",
		"View filter: all, today, pending, done, category:<id> (default from config)")
	taskListCmd.Flags().StringVar(&taskSort, "sort", "",
		"Sort order: created_desc, created_asc, due_asc, due_desc, priority (default from config)")
	taskListCmd.Flags().StringVarP(&taskPriority, "priority", "p", "",
		"Keep only one priority: high, medium, low")
	taskListCmd.Flags().StringVarP(&taskSearch, "search", "s", "",
		"Match title or description, case-insensitive")
	taskCmd.AddCommand(taskAddCmd)
	taskAddCmd.Flags().StringVarP(&taskDesc, "desc", "d", "", "Description")
	taskAddCmd.Flags().StringVarP(&taskCategory, "category", "c", "", "Category id or name")
	taskAddCmd.Flags().StringVarP(&taskPriority, "priority", "p", "",
		"Priority: high, medium, low (default medium)")
	taskAddCmd.Flags().StringVar(&taskDue, "due", "", "Due date, YYYY-MM-DD")
	taskCmd.AddCommand(taskEditCmd)
	taskEditCmd.Flags().StringVarP(&taskTitle, "title", "t", "", "New title")
	taskEditCmd.Flags().StringVarP(&taskDesc, "desc", "d", "", "New description")
	taskEditCmd.Flags().StringVarP(&taskCategory, "category", "c", "",
		"New category id or name ('none' clears it)")
	taskEditCmd.Flags().StringVarP(&taskPriority, "priority", "p", "", "New priority")
	taskEditCmd.Flags().StringVar(&taskDue, "due", "", "New due date, YYYY-MM-DD ('' clears it)")
	taskCmd.AddCommand(taskDoneCmd)
	taskDoneCmd.Flags().BoolVar(&taskUndo, "undo", false, "Flip the task back to pending")
	taskCmd.AddCommand(taskRmCmd)
	taskRmCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")

	// category commands
	rootCmd.AddCommand(categoryCmd)
	categoryCmd.AddCommand(categoryListCmd)
	categoryCmd.AddCommand(categoryAddCmd)
	categoryAddCmd.Flags().StringVar(&categoryColor, "color", "",
		"Palette color hex, e.g. #6366f1 (default: the first palette color)")
	categoryCmd.AddCommand(categoryEditCmd)
	categoryEditCmd.Flags().StringVar(&categoryName, "name", "", "New name")
	categoryEditCmd.Flags().StringVar(&categoryColor, "color", "", "New palette color hex")
	categoryCmd.AddCommand(categoryRmCmd)
	categoryRmCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")

	// server + board
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(boardCmd)
}

// runRootCommand makes bare `taskflow` useful: on a terminal with a stored
// session it opens the board, otherwise it prints help.
func runRootCommand(cmd *cobra.Command, args []string) {
	if ux.IsInteractive() {
		app, err := newApp()
		if err == nil {
			_, signedIn := app.sessions.Current()
			app.Close()
			if signedIn {
				runBoardCommand(cmd, args)
				return
			}
		}
	}
	_ = cmd.Help()
}
