package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathsheet/internal/frontend"
	"github.com/abhisek/mathsheet/internal/problemgen"
	"github.com/abhisek/mathsheet/internal/settings"
	"github.com/abhisek/mathsheet/internal/worksheet"
)

// env is everything a command needs to generate sheets.
type env struct {
	settings  *settings.Settings
	seed      uint64
	assembler *worksheet.Assembler
	dir       string
}

// loadEnv reads settings from --config (or the user config), applies
// --seed and builds an assembler writing into the working directory.
func loadEnv(cmd *cobra.Command) (*env, error) {
	path, _ := cmd.Flags().GetString("config")
	return loadEnvFrom(cmd, path)
}

func loadEnvFrom(cmd *cobra.Command, path string) (*env, error) {
	s, err := settings.Load(path)
	if err != nil {
		return nil, err
	}
	if s.Path() != "" {
		log.Printf("[settings] loaded %s", s.Path())
	}

	seed := s.Seed
	if cmd.Flags().Changed("seed") {
		seed, _ = cmd.Flags().GetUint64("seed")
	}

	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("working directory: %w", err)
	}

	return &env{
		settings:  s,
		seed:      seed,
		assembler: worksheet.NewAssembler(problemgen.NewRand(seed), problemgen.DefaultConfig()),
		dir:       dir,
	}, nil
}

// generate returns the Generate function handed to front ends.
func (e *env) generate() frontend.Generate {
	return frontend.Bind(e.assembler, e.dir)
}

// source describes where the defaults came from, for display.
func (e *env) source() string {
	if p := e.settings.Path(); p != "" {
		return p
	}
	return "built-in defaults"
}
