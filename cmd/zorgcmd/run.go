package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zorgdesk/zorgcmd/config"
	"github.com/zorgdesk/zorgcmd/pkg/auth"
	"github.com/zorgdesk/zorgcmd/pkg/classifier"
	"github.com/zorgdesk/zorgcmd/pkg/history"
	"github.com/zorgdesk/zorgcmd/pkg/llms"
	"github.com/zorgdesk/zorgcmd/pkg/models"
	"github.com/zorgdesk/zorgcmd/pkg/server"
	"github.com/zorgdesk/zorgcmd/pkg/store"
)

const shutdownTimeout = 10 * time.Second

// run is the entrypoint for the zorgcmd server
func run() {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error configuring zorgcmd: %s", err)
	}

	handleCLIOptions(cfg)

	log.Infof("Starting zorgcmd server version %s", config.VersionString)

	config.SetLogLevel(cfg)
	appState := NewAppState(cfg)

	srv := server.Create(appState)
	setupSignalHandler(srv)

	log.Infof("Listening on: %s", srv.Addr)
	err = srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

// NewAppState creates an AppState struct from the config file / ENV and
// wires up the two classifier tiers. A missing LLM API key is not fatal:
// the server runs with the local tier only and escalations report the AI
// tier as unavailable.
func NewAppState(cfg *config.Config) *models.AppState {
	appState := &models.AppState{
		ScheduleStore: newScheduleStore(),
		History:       history.NewStore(history.DefaultCapacity),
		Config:        cfg,
	}

	llmClient, err := llms.NewLLMClient(context.Background(), cfg)
	if err != nil {
		log.Warnf("AI classification tier disabled: %v", err)
	}
	appState.LLMClient = llmClient

	var aiTier classifier.AIClassifier
	if llmClient != nil {
		aiTier = llms.NewIntentClassifier(llmClient, cfg.LLM.Model)
	}
	appState.Classifier = classifier.NewRouter(
		classifier.NewLocalClassifier(nil),
		aiTier,
		cfg.Classifier.HighConfidenceThreshold,
	)

	return appState
}

func newScheduleStore() *store.MemoryScheduleStore {
	scheduleStore := store.NewMemoryScheduleStore()
	scheduleStore.Seed(time.Now())
	return scheduleStore
}

// handleCLIOptions handles CLI options that don't require the server to run
func handleCLIOptions(cfg *config.Config) {
	if showVersion {
		fmt.Println(config.VersionString)
		os.Exit(0)
	}
	if generateKey {
		fmt.Println(auth.GenerateJWT(cfg))
		os.Exit(0)
	}
	if dumpConfig {
		out, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			log.Fatalf("Error dumping config: %s", err)
		}
		fmt.Println(string(out))
		os.Exit(0)
	}
}

// setupSignalHandler drains in-flight requests on termination
func setupSignalHandler(srv *http.Server) {
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-signalCh
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Errorf("Error shutting down server: %v", err)
		}
	}()
}
