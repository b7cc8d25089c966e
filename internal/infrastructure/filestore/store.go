// Package filestore implementa repository.SnapshotStore sobre archivos JSON Lines:
// un objeto JSON por línea, en el orden de la colección. Con compresión activada
// el archivo se escribe en formato snappy framed y lleva la extensión .jsonl.sz.
//
// Cada Save escribe un archivo temporal en el mismo directorio y lo renombra,
// de modo que un lector nunca ve un snapshot a medio escribir.
package filestore

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/golang/snappy"

	"github.com/jhoicas/weddingvendor-api/internal/domain"
	"github.com/jhoicas/weddingvendor-api/internal/domain/repository"
)

// Store snapshot de una colección en un archivo.
type Store[T any] struct {
	path     string
	compress bool
}

var _ repository.SnapshotStore[struct{}] = (*Store[struct{}])(nil)

// New construye el store para la colección name dentro de dir (p. ej. data/vendors.jsonl).
func New[T any](dir, name string, compress bool) *Store[T] {
	file := name + ".jsonl"
	if compress {
		file += ".sz"
	}
	return &Store[T]{path: filepath.Join(dir, file), compress: compress}
}

// Path ruta del archivo del snapshot.
func (s *Store[T]) Path() string { return s.path }

// Load lee el snapshot completo. Un archivo inexistente o vacío devuelve un slice vacío.
func (s *Store[T]) Load(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: abrir %s: %w", domain.ErrPersistence, s.path, err)
	}
	defer f.Close()

	var r io.Reader = bufio.NewReader(f)
	if s.compress {
		r = snappy.NewReader(r)
	}

	var items []T
	dec := json.NewDecoder(r)
	for {
		var item T
		err := dec.Decode(&item)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: decodificar registro %d de %s: %w", domain.ErrPersistence, len(items)+1, s.path, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// Save reemplaza el snapshot. Se escribe aunque items esté vacío.
func (s *Store[T]) Save(ctx context.Context, items []T) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: crear directorio %s: %w", domain.ErrPersistence, dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: crear temporal: %w", domain.ErrPersistence, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	bw := bufio.NewWriter(tmp)
	var w io.Writer = bw
	var sw *snappy.Writer
	if s.compress {
		sw = snappy.NewBufferedWriter(bw)
		w = sw
	}

	enc := json.NewEncoder(w)
	for i := range items {
		if err = enc.Encode(items[i]); err != nil {
			return fmt.Errorf("%w: codificar registro %d: %w", domain.ErrPersistence, i+1, err)
		}
	}
	if sw != nil {
		if err = sw.Close(); err != nil {
			return fmt.Errorf("%w: cerrar snappy: %w", domain.ErrPersistence, err)
		}
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("%w: escribir %s: %w", domain.ErrPersistence, tmp.Name(), err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%w: sync %s: %w", domain.ErrPersistence, tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: cerrar %s: %w", domain.ErrPersistence, tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("%w: renombrar a %s: %w", domain.ErrPersistence, s.path, err)
	}
	return nil
}
