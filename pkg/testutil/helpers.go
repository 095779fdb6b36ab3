// Package testutil provides common utility functions for testing.
package testutil

import (
	"math/rand/v2"
	"testing"

	"github.com/iwvelando/perspective-retraites/internal/examples"
)

// Catalog returns a small fixed catalog used across package tests.
func Catalog() []examples.Example {
	return []examples.Example{
		{ID: "baguette", Value: 1.2, Label: "une baguette"},
		{ID: "smic", Value: 21_600, Label: "un SMIC annuel net"},
		{ID: "rafale", Value: 100e6, Label: "un Rafale"},
		{ID: "budget-defense", Value: 50.5e9, Label: "le budget de la défense (2024)"},
		{ID: "jo-paris", Value: 8.8e9, Label: "les JO de Paris 2024"},
	}
}

// SeededRand returns a deterministic random source.
func SeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewStore builds an example store over catalog with a seeded random
// source, failing the test on error. A nil catalog uses Catalog().
func NewStore(t testing.TB, catalog []examples.Example) *examples.Store {
	t.Helper()
	if catalog == nil {
		catalog = Catalog()
	}
	store, err := examples.NewStore(catalog, examples.WithRand(SeededRand(42)))
	if err != nil {
		t.Fatalf("examples.NewStore() error = %v", err)
	}
	return store
}

// FindExample finds an example by id in the slice.
// Returns a pointer to the example if found, nil otherwise.
func FindExample(list []examples.Example, id string) *examples.Example {
	for i := range list {
		if list[i].ID == id {
			return &list[i]
		}
	}
	return nil
}
