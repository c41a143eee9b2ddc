// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package taskapi

import (
	"context"
	"net/http"
)

// ListCategories returns every category of the authenticated user.
func (c *Client) ListCategories(ctx context.Context) ([]Category, error) {
	var wire []wireCategory
	if err := c.do(ctx, "list categories", http.MethodGet, "/api/categories", nil, &wire); err != nil {
		return nil, err
	}

	cats := make([]Category, 0, len(wire))
	for _, w := range wire {
		cats = append(cats, categoryFromWire(w))
	}
	return cats, nil
}

// CreateCategory creates a category and returns the server's copy with the
// assigned ID. Duplicate names come back as KindRequestFailed (409).
func (c *Client) CreateCategory(ctx context.Context, draft CategoryDraft) (Category, error) {
	var wire wireCategory
	if err := c.do(ctx, "create category", http.MethodPost, "/api/categories", draft.payload(), &wire); err != nil {
		return Category{}, err
	}
	return categoryFromWire(wire), nil
}

// UpdateCategory renames or recolors a category and returns the server's copy.
func (c *Client) UpdateCategory(ctx context.Context, id string, draft CategoryDraft) (Category, error) {
	if err := checkID("update category", id); err != nil {
		return Category{}, err
	}
	var wire wireCategory
	if err := c.do(ctx, "update category", http.MethodPut, "/api/categories/"+id, draft.payload(), &wire); err != nil {
		return Category{}, err
	}
	return categoryFromWire(wire), nil
}

// DeleteCategory removes a category. The server refuses (400) while tasks
// still reference it, so callers need not pre-check.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	if err := checkID("delete category", id); err != nil {
		return err
	}
	return c.do(ctx, "delete category", http.MethodDelete, "/api/categories/"+id, nil, nil)
}
