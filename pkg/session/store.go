// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package session persists the authenticated session across process runs.
//
// A session is an opaque bearer token plus the username it belongs to. The
// store keeps each under its own file in the state directory so either can
// be read or replaced independently, and hydrates once at startup; reads
// afterwards are served from memory. Clearing the store is what "logout"
// means: the token is only ever invalidated locally.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Session is an authenticated session as known to this client.
type Session struct {
	// Token is the opaque bearer credential. Never logged.
	Token string

	// Username is the display name the session belongs to.
	Username string
}

// Store is the contract for session persistence. Implementations must be
// safe for concurrent use.
type Store interface {
	// Current returns the active session, if any.
	Current() (Session, bool)

	// Save replaces the active session and persists it.
	Save(s Session) error

	// Clear forgets the active session and removes the persisted copy.
	// Clearing an empty store is a no-op.
	Clear() error
}

// -----------------------------------------------------------------------------
// File-backed store
// -----------------------------------------------------------------------------

const (
	tokenFile    = "token"
	usernameFile = "username"

	fileMode = 0o600
	dirMode  = 0o700
)

// FileStore persists the session under a state directory, one file per key.
type FileStore struct {
	dir string

	mu  sync.RWMutex
	cur *Session
}

var _ Store = (*FileStore)(nil)

// Open hydrates a FileStore from dir, creating the directory if needed.
// A missing or empty token file means no session is active.
func Open(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return nil, fmt.Errorf("create session dir: %w", err)
	}

	s := &FileStore{dir: dir}

	token, err := readKey(filepath.Join(dir, tokenFile))
	if err != nil {
		return nil, err
	}
	if token == "" {
		return s, nil
	}
	username, err := readKey(filepath.Join(dir, usernameFile))
	if err != nil {
		return nil, err
	}

	s.cur = &Session{Token: token, Username: username}
	return s, nil
}

// Current returns the active session, if any.
func (s *FileStore) Current() (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cur == nil {
		return Session{}, false
	}
	return *s.cur, true
}

// Save replaces the active session and persists both keys.
func (s *FileStore) Save(sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeKey(filepath.Join(s.dir, tokenFile), sess.Token); err != nil {
		return err
	}
	if err := writeKey(filepath.Join(s.dir, usernameFile), sess.Username); err != nil {
		return err
	}
	s.cur = &sess
	return nil
}

// Clear forgets the active session and removes both key files.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cur = nil
	for _, name := range []string{tokenFile, usernameFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove session key %s: %w", name, err)
		}
	}
	return nil
}

func readKey(path string) (string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read session key: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func writeKey(path, value string) error {
	if err := os.WriteFile(path, []byte(value+"\n"), fileMode); err != nil {
		return fmt.Errorf("write session key: %w", err)
	}
	return nil
}

// -----------------------------------------------------------------------------
// In-memory store
// -----------------------------------------------------------------------------

// MemStore is a Store with no persistence, for tests and ephemeral runs.
type MemStore struct {
	mu  sync.RWMutex
	cur *Session
}

var _ Store = (*MemStore)(nil)

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// Current returns the active session, if any.
func (s *MemStore) Current() (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cur == nil {
		return Session{}, false
	}
	return *s.cur, true
}

// Save replaces the active session.
func (s *MemStore) Save(sess Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur = &sess
	return nil
}

// Clear forgets the active session.
func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur = nil
	return nil
}
