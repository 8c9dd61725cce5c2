package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"talentscout/internal/ats"
	"talentscout/internal/logger"
	"talentscout/internal/resume"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	displayKeywordLimit = 15
	resumePreviewLimit  = 2000
	notFound            = "Not found"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against role keywords or a job description",
	Run: func(cmd *cobra.Command, _ []string) {
		score(cmd)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)

	scoreCmd.Flags().StringP("resume", "r", "", "path to the resume pdf (required)")
	scoreCmd.Flags().String("role", "", "job role for ATS keywords; an interactive picker is shown when unset")
	scoreCmd.Flags().String("jd", "", "path to a job description text file for the compatibility check")
	scoreCmd.Flags().Bool("show-text", false, "print the extracted resume text")

	scoreCmd.MarkFlagRequired("resume")
}

func score(cmd *cobra.Command) {
	lg, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		lg.Fatal("getting a config", zap.Error(err))
	}

	catalog := ats.NewCatalog(config.ATS.DefaultRole)
	if err := catalog.MergeConfig(viper.Get("ats.roles")); err != nil {
		lg.Fatal("loading custom roles", zap.Error(err))
	}

	resumePath, _ := cmd.Flags().GetString("resume")
	if _, err := os.Stat(resumePath); err != nil {
		lg.Fatal("resume file is not readable", zap.String("resume", resumePath), zap.Error(err))
	}

	// Extraction failure degrades to an empty resume: the scorers yield a
	// zero score rather than the command crashing.
	text, err := resume.ExtractFile(resumePath)
	if err != nil {
		lg.Warn("resume text extraction failed",
			zap.String("resume", resumePath),
			zap.Error(err),
		)
	}

	role := resolveRole(cmd, catalog, lg)
	keywords, role := catalog.Keywords(role)

	lg.Info("scoring resume",
		zap.String("resume", resumePath),
		zap.String("role", role),
		zap.Int("keyword_count", len(keywords)),
	)

	match := ats.ScoreAgainstKeywords(text, keywords)
	contact := resume.ExtractContact(text)

	fmt.Println("--- Resume ATS Summary ---")
	fmt.Printf("Role: %s\n", role)
	fmt.Printf("ATS Score: %.2f%%\n", match.Score)
	fmt.Printf("Matched Keywords: %s\n", joinOrNone(match.Matched))
	fmt.Printf("Name: %s\n", orNotFound(contact.Name))
	fmt.Printf("Email: %s\n", orNotFound(contact.Email))
	fmt.Printf("Phone: %s\n", orNotFound(contact.Phone))

	if jdPath, _ := cmd.Flags().GetString("jd"); strings.TrimSpace(jdPath) != "" {
		scoreAgainstJD(text, jdPath, lg)
	}

	if show, _ := cmd.Flags().GetBool("show-text"); show {
		preview := text
		if len(preview) > resumePreviewLimit {
			preview = preview[:resumePreviewLimit]
		}
		fmt.Println("\n--- Extracted Resume Text ---")
		fmt.Println(preview)
	}
}

// resolveRole picks the job role from the flag or, interactively, from the
// catalog listing.
func resolveRole(cmd *cobra.Command, catalog *ats.Catalog, lg *zap.Logger) string {
	role, _ := cmd.Flags().GetString("role")
	if strings.TrimSpace(role) != "" {
		return role
	}

	prompt := promptui.Select{
		Label: "Choose a job role for ATS keywords",
		Items: catalog.Roles(),
		Size:  len(catalog.Roles()),
	}

	_, selected, err := prompt.Run()
	if err != nil {
		lg.Warn("role selection aborted, using default",
			zap.String("role", catalog.Default()),
			zap.Error(err),
		)
		return catalog.Default()
	}

	return selected
}

func scoreAgainstJD(resumeText, jdPath string, lg *zap.Logger) {
	jdBytes, err := os.ReadFile(jdPath)
	if err != nil {
		lg.Fatal("reading job description", zap.String("jd", jdPath), zap.Error(err))
	}

	match := ats.ScoreAgainstJobDescription(resumeText, string(jdBytes))

	fmt.Println("\n--- ATS Compatibility Check ---")
	fmt.Printf("ATS Compatibility Score: %d%%\n", match.Score)
	fmt.Printf("Matched Keywords (%d): %s\n", len(match.Matched), joinOrNone(firstN(match.Matched, displayKeywordLimit)))
	fmt.Printf("Missing Keywords (%d): %s\n", len(match.Missing), joinOrNone(firstN(match.Missing, displayKeywordLimit)))

	switch {
	case match.Score >= 80:
		fmt.Println("Your resume is highly ATS-friendly!")
	case match.Score >= 50:
		fmt.Println("Your resume is moderately ATS-compatible. Consider adding more relevant keywords.")
	default:
		fmt.Println("Your resume might get filtered out by ATS systems. Add more role-specific keywords.")
	}
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None"
	}
	return strings.Join(items, ", ")
}

func orNotFound(value string) string {
	if strings.TrimSpace(value) == "" {
		return notFound
	}
	return value
}
