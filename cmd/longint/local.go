package main

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/demigunkan/longint/pkg/interp"
	"github.com/demigunkan/longint/pkg/registers"
	"github.com/ethereum/go-ethereum/log"
	"github.com/goccy/go-json"
)

// runLocal runs the lines of r on local registers, restored from and saved
// back to path when it is set.
func runLocal(ctx context.Context, path string, r io.Reader, term *interp.Terminal) error {
	store := registers.New()
	if path != "" {
		if err := load(path, store); err != nil {
			return err
		}
	}

	if err := interp.New(store).Run(ctx, r, term); err != nil {
		return err
	}

	if path != "" {
		return save(path, store)
	}
	return nil
}

func load(path string, store *registers.Store) error {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, store); err != nil {
		return err
	}
	log.Debug("Loaded registers", "path", path, "count", store.Len())
	return nil
}

func save(path string, store *registers.Store) error {
	b, err := json.Marshal(store)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return err
	}
	log.Debug("Saved registers", "path", path, "count", store.Len())
	return nil
}
