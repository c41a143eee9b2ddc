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
	"fmt"
	"strings"

	"github.com/AleutianAI/taskflow/cmd/taskflow/internal/forms"
	"github.com/AleutianAI/taskflow/pkg/taskapi"
	"github.com/AleutianAI/taskflow/pkg/ux"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// =============================================================================
// category list
// =============================================================================

func runCategoryListCommand(cmd *cobra.Command, args []string) {
	app, err := newApp()
	if err != nil {
		fail(err)
	}
	defer app.Close()

	var categories []taskapi.Category
	var tasks []taskapi.Task
	err = ux.WithSpinner("Fetching categories", func() error {
		ctx, cancel := app.ctx()
		defer cancel()

		var g errgroup.Group
		g.Go(func() error {
			var listErr error
			categories, listErr = app.client.ListCategories(ctx)
			return listErr
		})
		g.Go(func() error {
			var listErr error
			tasks, listErr = app.client.ListTasks(ctx)
			return listErr
		})
		return g.Wait()
	})
	if err != nil {
		fail(err)
	}

	if len(categories) == 0 {
		ux.Muted("No categories yet. Add one with `taskflow category add <name>`.")
		return
	}

	counts := make(map[string]int, len(categories))
	for _, t := range tasks {
		counts[t.Category]++
	}
	for _, c := range categories {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color)).Render("■")
		detail := fmt.Sprintf("id %s · %d tasks", c.ID, counts[c.ID])
		fmt.Printf("%s %s %s\n", swatch, c.Name, ux.Styles.Muted.Render("("+detail+")"))
	}
}

// =============================================================================
// category add
// =============================================================================

func runCategoryAddCommand(cmd *cobra.Command, args []string) {
	app, err := newApp()
	if err != nil {
		fail(err)
	}
	defer app.Close()

	name := strings.Join(args, " ")
	color := categoryColor
	if color == "" {
		color = forms.DefaultColor
	}

	if errs := forms.Check(forms.Category{Name: name, Color: color}); !errs.Valid() {
		failValidation(errs)
	}

	var created taskapi.Category
	err = ux.WithSpinner("Creating the category", func() error {
		ctx, cancel := app.ctx()
		defer cancel()
		var createErr error
		created, createErr = app.client.CreateCategory(ctx, taskapi.CategoryDraft{Name: name, Color: color})
		return createErr
	})
	if err != nil {
		fail(err)
	}

	ux.Success(fmt.Sprintf("Created category %q (%s)", created.Name, forms.ColorName(created.Color)))
	ux.Muted("id " + created.ID)
}

// =============================================================================
// category edit
// =============================================================================

func runCategoryEditCommand(cmd *cobra.Command, args []string) {
	app, err := newApp()
	if err != nil {
		fail(err)
	}
	defer app.Close()

	current, err := findCategory(app, args[0])
	if err != nil {
		fail(err)
	}

	draft := taskapi.CategoryDraft{Name: current.Name, Color: current.Color}
	if cmd.Flags().Changed("name") {
		draft.Name = categoryName
	}
	if cmd.Flags().Changed("color") {
		draft.Color = categoryColor
	}

	if errs := forms.Check(forms.Category{Name: draft.Name, Color: draft.Color}); !errs.Valid() {
		failValidation(errs)
	}

	var updated taskapi.Category
	err = ux.WithSpinner("Saving the category", func() error {
		ctx, cancel := app.ctx()
		defer cancel()
		var updateErr error
		updated, updateErr = app.client.UpdateCategory(ctx, current.ID, draft)
		return updateErr
	})
	if err != nil {
		fail(err)
	}

	ux.Success(fmt.Sprintf("Saved category %q", updated.Name))
}

// =============================================================================
// category rm
// =============================================================================

// runCategoryRmCommand deletes a category. The server refuses with a
// conflict while tasks still reference it; that message is surfaced as-is.
func runCategoryRmCommand(cmd *cobra.Command, args []string) {
	app, err := newApp()
	if err != nil {
		fail(err)
	}
	defer app.Close()

	current, err := findCategory(app, args[0])
	if err != nil {
		fail(err)
	}

	if !assumeYes {
		ok, confirmErr := ux.Confirm(fmt.Sprintf("Delete category %q?", current.Name))
		if confirmErr != nil {
			fail(confirmErr)
		}
		if !ok {
			return
		}
	}

	err = ux.WithSpinner("Deleting the category", func() error {
		ctx, cancel := app.ctx()
		defer cancel()
		return app.client.DeleteCategory(ctx, current.ID)
	})
	if err != nil {
		fail(err)
	}

	ux.Success("Category deleted")
}
