// Package main provides the llama model inspection CLI.
package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/llama-go/llama/loader"
)

const version = "v0.1.0-dev"

var (
	logLevel string
	nCtx     int
	rootCmd  *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "llama",
		Short: "Inspect llama models stored in legacy GGML containers",
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")

	inspectCmd := &cobra.Command{
		Use:   "inspect <model-file>",
		Short: "Load a model file and report its contents",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	inspectCmd.Flags().IntVar(&nCtx, "ctx", 2048, "Context length used for the memory estimate")
	rootCmd.AddCommand(inspectCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("llama %s\n", version)
		},
	})
}

func runInspect(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "llama",
		Level: hclog.LevelFromString(logLevel),
	})

	path := args[0]
	model, err := loader.Load(path, nCtx, progressLogger(logger))
	if err != nil {
		return err
	}

	h := model.Hyperparameters
	fmt.Printf("model: %s\n", path)
	fmt.Printf("  file type: %s\n", h.FileType)
	fmt.Printf("  n_vocab:   %d\n", h.NVocab)
	fmt.Printf("  n_embd:    %d\n", h.NEmbd)
	fmt.Printf("  n_head:    %d\n", h.NHead)
	fmt.Printf("  n_layer:   %d\n", h.NLayer)
	fmt.Printf("  n_rot:     %d\n", h.NRot)
	fmt.Printf("  tensors:   %d\n", len(model.Tensors))

	if logger.IsDebug() {
		names := make([]string, 0, len(model.Tensors))
		for name := range model.Tensors {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			t := model.Tensors[name]
			logger.Debug("tensor", "name", name, "dims", t.Dims, "type", t.ElementType.String(), "bytes", len(t.Data))
		}
	}

	return nil
}

// progressLogger renders the progress event stream. Events are only
// valid inside the callback, so everything logged is copied out by the
// logger before returning.
func progressLogger(logger hclog.Logger) loader.ProgressFunc {
	return func(p loader.Progress) {
		switch ev := p.(type) {
		case loader.HyperparametersLoaded:
			logger.Info("hyperparameters loaded",
				"n_vocab", ev.Hyperparameters.NVocab,
				"n_layer", ev.Hyperparameters.NLayer,
				"file_type", ev.Hyperparameters.FileType.String())
		case loader.ContextSize:
			logger.Info("context size estimated", "bytes", ev.Bytes)
		case loader.PartLoading:
			logger.Info("loading part", "file", ev.File,
				"part", ev.CurrentPart+1, "of", ev.TotalParts)
		case loader.PartTensorLoaded:
			logger.Debug("tensor loaded", "file", ev.File,
				"tensor", ev.CurrentTensor+1, "of", ev.TensorCount)
		case loader.PartLoaded:
			logger.Info("part loaded", "file", ev.File,
				"bytes", ev.ByteSize, "tensors", ev.TensorCount)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
