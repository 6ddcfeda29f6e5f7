// Package advisor asks a large language model for commentary on the ledger.
//
// Two providers are supported: Google Gemini through generative-ai-go and
// OpenAI-compatible chat completion endpoints through go-openai. Both share
// the prompt built by BuildPrompt and the reply parsing of ParseAdvice.
package advisor

import (
	"context"
	"fmt"
	"time"

	"ssshep/expensepro/internal/config"
	"ssshep/expensepro/internal/ledger"
	"ssshep/expensepro/internal/ledgererror"
	"ssshep/expensepro/internal/logging"
	"ssshep/expensepro/internal/models"

	"github.com/shopspring/decimal"
)

// Advisor produces spending advice for a ledger.
type Advisor interface {
	Analyze(ctx context.Context, req Request) (Advice, error)
	Close() error
}

// Request carries the figures an advisor reasons about.
type Request struct {
	Transactions []models.Transaction
	TotalSpent   decimal.Decimal
	Budget       decimal.Decimal
	TravelAmount decimal.Decimal
}

// NewRequest derives a Request from a snapshot.
func NewRequest(s models.Snapshot, travelKeywords []string) Request {
	totals := ledger.TotalsWithKeywords(s.Transactions, s.Budget, travelKeywords)
	return Request{
		Transactions: s.Transactions,
		TotalSpent:   totals.TotalSpent(),
		Budget:       s.Budget,
		TravelAmount: totals.TravelAmount,
	}
}

// Remaining is the budget left after TotalSpent.
func (r Request) Remaining() decimal.Decimal {
	return r.Budget.Sub(r.TotalSpent)
}

// Advice is the structured reply of an advisor.
type Advice struct {
	Summary         string   `json:"summary"`
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
}

// generateFunc sends one prompt and returns the raw model reply.
type generateFunc func(ctx context.Context, prompt string) (string, error)

// promptAdvisor holds what both providers share: prompting, timeouts and logging.
type promptAdvisor struct {
	provider string
	model    string
	timeout  time.Duration
	generate generateFunc
	logger   logging.Logger
}

func (a *promptAdvisor) Analyze(ctx context.Context, req Request) (Advice, error) {
	if len(req.Transactions) == 0 {
		return Advice{}, ledgererror.ErrNoTransactions
	}
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	log := a.logger.WithFields(
		logging.F(logging.FieldProvider, a.provider),
		logging.F(logging.FieldCount, len(req.Transactions)),
	)
	log.Debug("Requesting AI analysis")

	start := time.Now()
	reply, err := a.generate(ctx, BuildPrompt(req))
	if err != nil {
		log.WithError(err).Warn("AI analysis failed")
		return Advice{}, fmt.Errorf("%s analysis failed: %w", a.provider, err)
	}

	log.Info("AI analysis received", logging.F(logging.FieldDuration, time.Since(start).Milliseconds()))
	return ParseAdvice(reply), nil
}

// New builds the advisor selected by cfg.AI.Provider.
func New(cfg *config.Config, logger logging.Logger) (Advisor, error) {
	if cfg == nil || !cfg.AI.Enabled {
		return nil, ledgererror.ErrAdvisorDisabled
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	timeout := time.Duration(cfg.AI.TimeoutSeconds) * time.Second

	switch cfg.AI.Provider {
	case config.ProviderGemini:
		return NewGeminiAdvisor(context.Background(), cfg.ProviderAPIKey(), cfg.ModelName(), timeout, logger)
	case config.ProviderOpenAI:
		return NewOpenAIAdvisor(cfg.ProviderAPIKey(), cfg.ModelName(), "", timeout, logger), nil
	}
	return nil, fmt.Errorf("unsupported AI provider: %s", cfg.AI.Provider)
}
