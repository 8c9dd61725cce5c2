package cmd

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"talentscout/internal/logger"
	"talentscout/internal/session"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptYes = "Yes"
	PromptNo  = "No"

	restartCommand = "restart"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive hiring assistant session",
	Run: func(_ *cobra.Command, _ []string) {
		chat()
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().StringP("transcript-file", "t", "", "write the session transcript to this file as json")

	viper.BindPFlag("transcript-file", chatCmd.Flags().Lookup("transcript-file"))
}

// chat runs the conversational intake and interview loop. One input per
// turn, processed to completion before the next is read.
func chat() {
	ctx := context.Background()

	lg, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		lg.Fatal("getting a config", zap.Error(err))
	}

	lg.Info("starting the talentscout chat", zap.String("version", version))

	generator, err := newGenerator(ctx, config.AI, lg)
	if err != nil {
		// A missing generator is not fatal: the interview degrades to
		// the fallback question.
		lg.Warn("starting without a question generator", zap.Error(err))
		generator = nil
	} else {
		lg.Info("question generator ready",
			zap.String(logger.FieldProvider, generator.Provider()),
			zap.String(logger.FieldModel, generator.Model()),
		)
	}

	orch := session.NewOrchestrator(generator, config.AI.QueryTimeout, lg)

	sayAssistant(orch.Greeting())

	scanner := bufio.NewScanner(os.Stdin)
	for orch.Session().Phase != session.Done {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		input := scanner.Text()

		if strings.EqualFold(strings.TrimSpace(input), restartCommand) {
			if confirmRestart() {
				sayAssistant(orch.Reset())
			}
			continue
		}

		for _, reply := range orch.Handle(ctx, input) {
			sayAssistant(reply)
		}
	}

	if err := scanner.Err(); err != nil {
		lg.Fatal("reading input", zap.Error(err))
	}

	printSummary(orch.Session())

	if path := strings.TrimSpace(viper.GetString("transcript-file")); path != "" {
		if err := orch.Session().DumpTranscript(path); err != nil {
			lg.Warn("dumping transcript", zap.Error(err))
		} else {
			lg.Info("transcript saved", zap.String("filename", path))
		}
	}
}

func confirmRestart() bool {
	prompt := promptui.Select{
		Label: "Are you sure you want to restart the chat? All data will be lost",
		Items: []string{PromptYes, PromptNo},
	}

	_, answer, err := prompt.Run()
	if err != nil {
		return false
	}

	return answer == PromptYes
}

func sayAssistant(text string) {
	fmt.Println(text)
}

// printSummary renders the end-of-interview view: collected fields in
// registry order, then question/answer pairs. Nothing is printed when the
// interview was not completed.
func printSummary(s *session.Session) {
	summary := s.Summarize()
	if len(summary.QA) == 0 || len(summary.QA) != len(s.Questions()) {
		return
	}

	fmt.Println("\n--- Summary of Your Information ---")
	for _, field := range summary.Fields {
		fmt.Printf("%s: %s\n", field.Name, field.Value)
	}

	fmt.Println("\n--- Your Answers to Technical Questions ---")
	for i, qa := range summary.QA {
		fmt.Printf("Q%d: %s\n", i+1, qa.Question)
		fmt.Printf("A%d: %s\n", i+1, qa.Answer)
	}
}
