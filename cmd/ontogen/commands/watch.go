package commands

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/ontogen/codegen/ontology"
	"github.com/teranos/ontogen/logger"
	"github.com/teranos/ontogen/version"
)

// WatchCmd regenerates whenever the ontology changes
var WatchCmd = &cobra.Command{
	Use:   "watch [ontology]",
	Short: "Regenerate whenever the ontology changes",
	Long: `Generate once, then watch the ontology file and regenerate after every
change. Writes arriving within watch.debounce_ms of each other trigger a
single run. An ontology that fails to load is reported and the previous
output is left in place.

Press Ctrl+C to stop.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path := ontologyPath(args)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// reloads run on timer goroutines; one generation at a time
	var mu sync.Mutex
	regenerate := func(o *ontology.Ontology) error {
		mu.Lock()
		defer mu.Unlock()

		if err := ontology.CheckCompatible(o, version.Get()); err != nil {
			return err
		}
		files, err := render(ctx, cfg, o, path)
		if err != nil {
			return err
		}
		changed, err := writeOutput(ctx, cfg, files, true)
		if err != nil {
			return err
		}
		pterm.Success.Printfln("[%s] %d files, %d changed", time.Now().Format("15:04:05"), len(files), len(changed))
		return nil
	}

	o, err := ontology.Load(path)
	if err != nil {
		return err
	}
	if err := regenerate(o); err != nil {
		return err
	}

	w, err := ontology.NewWatcher(path, time.Duration(cfg.Watch.DebounceMS)*time.Millisecond)
	if err != nil {
		return err
	}
	w.OnReload(func(o *ontology.Ontology) error {
		if err := regenerate(o); err != nil {
			pterm.Error.Printfln("Regeneration failed: %v", err)
			return err
		}
		return nil
	})
	w.Start()

	pterm.Info.Printfln("Watching %s (Ctrl+C to stop)", absOrSelf(path))
	<-ctx.Done()

	logger.Infow("Stopping watcher", logger.FieldOntology, path)
	return w.Stop()
}
