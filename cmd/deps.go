package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/skillquest/internal/achievements"
	"github.com/abhisek/skillquest/internal/engine"
	"github.com/abhisek/skillquest/internal/ledger"
	"github.com/abhisek/skillquest/internal/llm"
	"github.com/abhisek/skillquest/internal/notify"
	"github.com/abhisek/skillquest/internal/progression"
	"github.com/abhisek/skillquest/internal/quizgen"
	"github.com/abhisek/skillquest/internal/skillgraph"
	"github.com/abhisek/skillquest/internal/store"
	"github.com/spf13/cobra"
)

// openStore opens the database behind the --db flag.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// buildEngine wires the full engine over an open store. When no LLM provider
// is configured the progression generator runs against an empty mock, so
// session closes still commit and only quiz generation reports failure.
func buildEngine(cmd *cobra.Command, st *store.Store) (*engine.Engine, *notify.Bridge, error) {
	graph, err := skillgraph.New(skillgraph.DefaultCatalog())
	if err != nil {
		return nil, nil, fmt.Errorf("load skill catalog: %w", err)
	}

	ledgerSvc := ledger.NewService(st.LedgerRepo())

	provider, err := llm.NewProviderFromEnv(cmd.Context(), st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Quiz generation will be unavailable.")
		provider = llm.NewMockProvider()
	}
	gen := quizgen.NewLLMGenerator(provider, quizgen.DefaultConfig())

	bridge := notify.NewBridge(notify.DefaultWindow)
	eng, err := engine.New(engine.Options{
		Graph:        graph,
		Ledger:       ledgerSvc,
		Achievements: achievements.NewEngine(st.UnlockRepo(), ledgerSvc, nil),
		Progressions: progression.NewManager(st.ProgressionRepo(), gen),
		Events:       st.EventRepo(),
		Notify:       bridge,
	})
	if err != nil {
		return nil, nil, err
	}
	return eng, bridge, nil
}
