package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/xaenox/email-triage/internal/analytics"
	"github.com/xaenox/email-triage/internal/classifier"
	"github.com/xaenox/email-triage/internal/models"
	"github.com/xaenox/email-triage/internal/notifier"
	"github.com/xaenox/email-triage/internal/sink"
	"github.com/xaenox/email-triage/internal/triage"
	"github.com/xaenox/email-triage/pkg/config"
	"go.uber.org/zap"
)

// sampleEmails is the built-in demo batch used when no input file is
// configured.
var sampleEmails = []models.RawEmail{
	{
		Sender:  "john.doe@example.com",
		Subject: "Login not working",
		Content: "I can't log into my account. Getting error message 'Invalid credentials' but I'm sure my password is correct. This is very urgent as I need to access my dashboard for a client meeting.",
	},
	{
		Sender:  "sarah.smith@company.com",
		Subject: "Billing Question",
		Content: "Hi, I was charged $99 last month but I thought my subscription was only $49. Can you please check my billing details and explain this charge?",
	},
	{
		Sender:  "mike.wilson@startup.io",
		Subject: "Partnership Inquiry",
		Content: "Hello, we're interested in exploring a potential partnership opportunity. We're a fintech startup looking to integrate your API services. Could we schedule a call to discuss this further?",
	},
	{
		Sender:  "lisa.brown@tech.com",
		Subject: "Feature Request - Dark Mode",
		Content: "Love your product! Would it be possible to add a dark mode feature? Many users including myself would really appreciate this addition to reduce eye strain during late-night work sessions.",
	},
	{
		Sender:  "david.lee@business.org",
		Subject: "Refund Request",
		Content: "I need to cancel my subscription and get a refund for this month. I haven't used the service as expected and would like to process this cancellation immediately.",
	},
}

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	logger = logger.With(zap.String("run_id", uuid.New().String()))

	// Load configuration
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err), zap.String("path", "config.yaml"))
	}

	// Initialize classifier
	var clf classifier.Classifier
	if cfg.Classifier.UseOpenAI {
		logger.Info("Using OpenAI classifier", zap.String("model", cfg.OpenAI.Model))
		clf = classifier.NewGPTClassifier(
			cfg.OpenAI.APIKey,
			cfg.OpenAI.Model,
			cfg.OpenAI.MaxTokens,
			cfg.OpenAI.Temperature,
			logger,
		)
	} else {
		logger.Info("Using rule-based classifier")
		clf = classifier.NewRuleClassifier()
	}

	// Initialize notifier
	var ntf notifier.Notifier
	if cfg.Notifier.Type == "telegram" {
		logger.Info("Using Telegram notifier")
		ntf, err = notifier.NewTelegramNotifier(cfg.Notifier.Telegram.Token, cfg.Notifier.Telegram.ChatID, logger)
		if err != nil {
			logger.Fatal("Failed to create notifier", zap.Error(err))
		}
	} else {
		logger.Info("Using console notifier")
		ntf = notifier.NewConsoleNotifier()
	}

	pipeline := triage.New(clf, ntf, logger)

	emails, err := loadEmails(cfg.Input)
	if err != nil {
		logger.Fatal("Failed to load emails", zap.Error(err), zap.String("path", cfg.Input))
	}

	// Process each email
	for i, email := range emails {
		fmt.Printf("\nProcessing Email %d/%d...\n", i+1, len(emails))
		if _, err := pipeline.Process(email); err != nil {
			logger.Fatal("Failed to process email",
				zap.Error(err),
				zap.Int("index", i),
				zap.String("sender", email.Sender))
		}
	}

	log := pipeline.Log()

	// Generate analytics
	fmt.Println("\nKEYWORD ANALYTICS:")
	result := analytics.Aggregate(log, cfg.Analytics.TopKeywords)
	for _, category := range models.Categories {
		keywords := result[category]
		if len(keywords) == 0 {
			fmt.Printf("%s: No keywords\n", category)
			continue
		}
		fmt.Printf("%s: %s\n", category, strings.Join(keywords, ", "))
	}

	// Save results
	if err := sink.NewCSVSink(cfg.Output.CSVPath).Write(log); err != nil {
		logger.Fatal("Failed to write CSV", zap.Error(err), zap.String("path", cfg.Output.CSVPath))
	}
	logger.Info("Results saved", zap.String("path", cfg.Output.CSVPath))

	if err := sink.NewJSONSink(cfg.Output.JSONPath).Write(log); err != nil {
		logger.Fatal("Failed to write JSON", zap.Error(err), zap.String("path", cfg.Output.JSONPath))
	}
	logger.Info("Results saved", zap.String("path", cfg.Output.JSONPath))

	// Summary
	counts := make(map[models.Category]int)
	for _, email := range log {
		counts[email.Category]++
	}
	fmt.Printf("\nTotal emails processed: %d\n", len(log))
	for _, category := range models.Categories {
		if counts[category] > 0 {
			fmt.Printf("%s: %d emails\n", category, counts[category])
		}
	}
}

// loadEmails reads a JSON array of raw emails, or returns the built-in
// sample batch when no path is configured.
func loadEmails(path string) ([]models.RawEmail, error) {
	if path == "" {
		return sampleEmails, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading input file: %w", err)
	}

	var emails []models.RawEmail
	if err := json.Unmarshal(data, &emails); err != nil {
		return nil, fmt.Errorf("error parsing input file: %w", err)
	}
	return emails, nil
}
