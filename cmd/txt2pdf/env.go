package main

import (
	"context"
	"io"
	"os"
	"time"

	txt2pdf "github.com/alnah/go-txt2pdf"
	"github.com/alnah/go-txt2pdf/internal/config"
)

// Converter is the part of *txt2pdf.Converter the CLI drives.
type Converter interface {
	Convert(ctx context.Context, input txt2pdf.Input) (*txt2pdf.Result, error)
	Plan() txt2pdf.Plan
	Close() error
}

// Compile-time interface implementation check.
var _ Converter = (*txt2pdf.Converter)(nil)

// ConverterFactory builds a Converter from options.
type ConverterFactory func(opts ...txt2pdf.Option) (Converter, error)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now          func() time.Time
	Stdout       io.Writer
	Stderr       io.Writer
	Config       *config.Config // replaced by the loaded file, if any
	NewConverter ConverterFactory
	Prober       txt2pdf.Prober // browser detection for doctor
	Install      func(ctx context.Context, progress io.Writer) (string, error)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:          time.Now,
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		Config:       config.DefaultConfig(),
		NewConverter: newConverter,
		Prober:       txt2pdf.SystemProber,
		Install:      txt2pdf.InstallBrowser,
	}
}

func newConverter(opts ...txt2pdf.Option) (Converter, error) {
	return txt2pdf.NewConverter(opts...)
}
