package main

import (
	"context"
	"io"
	"os"
	"time"

	skillsheet "github.com/alnah/go-skillsheet"
)

// Converter is the part of *skillsheet.Converter the CLI uses.
type Converter interface {
	Extract(input skillsheet.Input) *skillsheet.SkillSheet
	ToWorkbook(ctx context.Context, input skillsheet.Input) ([]byte, error)
	ToDocument(ctx context.Context, input skillsheet.Input) ([]byte, error)
	ToHTML(ctx context.Context, input skillsheet.Input) ([]byte, error)
	ToPDF(ctx context.Context, input skillsheet.Input) ([]byte, error)
	Close() error
}

// Compile-time interface implementation check.
var _ Converter = (*skillsheet.Converter)(nil)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now          func() time.Time
	Stdout       io.Writer
	Stderr       io.Writer
	NewConverter func(opts ...skillsheet.Option) (Converter, error)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		NewConverter: func(opts ...skillsheet.Option) (Converter, error) {
			return skillsheet.NewConverter(opts...)
		},
	}
}
