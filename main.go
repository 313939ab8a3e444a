package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/example/polbot/internal/database"
	"github.com/example/polbot/internal/excel"
	"github.com/example/polbot/internal/forms"
	"github.com/example/polbot/internal/grammar"
	"github.com/example/polbot/internal/notify"
	"github.com/example/polbot/internal/practice"
	"github.com/example/polbot/internal/scheduler"
	"github.com/example/polbot/pkg/models"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: polbot <command> [options]

Commands:
  import    Import words from an Excel or CSV file
  backfill  Generate missing declension tables for stored words
  decline   Print the declension table for a lemma
  practice  Pick today's practice batch for a user
  answer    Record an answer outcome for a word
  serve     Run the reminder scheduler
`)
	os.Exit(2)
}

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
	}

	if err := database.Connect(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	var err error
	switch os.Args[1] {
	case "import":
		err = runImport(os.Args[2:])
	case "backfill":
		err = runBackfill()
	case "decline":
		err = runDecline(os.Args[2:])
	case "practice":
		err = runPractice(os.Args[2:])
	case "answer":
		err = runAnswer(os.Args[2:])
	case "serve":
		err = runServe()
	default:
		usage()
	}
	if err != nil {
		log.Fatal(err)
	}
}

func runImport(args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	config := excel.DefaultImportConfig()
	fs.StringVar(&config.FilePath, "file", "", "path to the Excel or CSV file")
	fs.StringVar(&config.SheetName, "sheet", config.SheetName, "sheet name (Excel only)")
	fs.IntVar(&config.StartRow, "start-row", config.StartRow, "first data row (1-based)")
	fs.Parse(args)

	if config.FilePath == "" {
		return fmt.Errorf("import: -file is required")
	}

	result, err := excel.ImportWords(config)
	if err != nil {
		return err
	}
	log.Printf("Import finished: %d processed, %d created, %d updated, %d skipped",
		result.TotalProcessed, result.Created, result.Updated, result.Skipped)
	for _, e := range result.Errors {
		log.Printf("Import error: %s", e)
	}
	return nil
}

func runBackfill() error {
	result, err := forms.Backfill(database.NewWordRepository())
	if err != nil {
		return err
	}
	log.Printf("Backfill finished: %d processed, %d nouns and %d adjectives filled, %d errors",
		result.Processed, result.NounsFilled, result.AdjectivesFilled, result.Errors)
	return nil
}

func runDecline(args []string) error {
	fs := flag.NewFlagSet("decline", flag.ExitOnError)
	class := fs.String("class", "noun", "noun or adjective")
	gender := fs.String("gender", "", "noun gender: m, f or n (guessed when empty)")
	animate := fs.Bool("animate", false, "treat the word as animate")
	fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("decline: exactly one lemma expected")
	}
	voc := fs.Arg(0)

	switch models.ParsePartOfSpeech(*class) {
	case models.PartNoun:
		g := models.Gender(*gender)
		if g == models.GenderUnknown {
			g = grammar.GuessGender(voc)
		}
		table, err := grammar.DeclineNoun(voc, g, *animate)
		if err != nil {
			return err
		}
		printCaseForms("singular", table.Singular)
		printCaseForms("plural", table.Plural)
	case models.PartAdjective:
		table, err := grammar.DeclineAdjective(voc, *animate)
		if err != nil {
			return err
		}
		printCaseForms("masculine singular", table.MascSingular)
		printCaseForms("feminine singular", table.FemSingular)
		printCaseForms("neuter singular", table.NeutSingular)
		printCaseForms("masculine-personal plural", table.MascPersonalPl)
		printCaseForms("other plural", table.OtherPl)
	default:
		return fmt.Errorf("decline: unsupported class %q", *class)
	}
	return nil
}

func printCaseForms(label string, forms models.CaseForms) {
	fmt.Printf("%s:\n", label)
	for _, c := range models.Cases {
		fmt.Printf("  %-5s %s\n", c, forms.Form(c))
	}
}

func runPractice(args []string) error {
	fs := flag.NewFlagSet("practice", flag.ExitOnError)
	username := fs.String("user", "", "username to practice as")
	k := fs.Int("k", practice.DefaultBatchSize, "batch size")
	search := fs.String("search", "", "substring filter on lemma or meaning")
	classes := fs.String("classes", "", "comma-separated part-of-speech filter")
	fs.Parse(args)

	if *username == "" {
		return fmt.Errorf("practice: -user is required")
	}
	user, err := database.NewUserRepository().GetOrCreate(*username)
	if err != nil {
		return err
	}

	opts := practice.BatchOptions{K: *k, Search: *search}
	for _, tag := range strings.Split(*classes, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			opts.Classes = append(opts.Classes, models.ParsePartOfSpeech(tag))
		}
	}

	batch, err := practice.PickBatch(
		database.NewWordRepository(),
		database.NewProgressRepository(),
		user.ID,
		opts,
	)
	if err != nil {
		return err
	}
	if len(batch) == 0 {
		fmt.Println("No words to practice.")
		return nil
	}
	for i, item := range batch {
		prompt, expect := item.Voc, item.Meaning
		if item.Direction == practice.MeaningToVoc {
			prompt, expect = item.Meaning, item.Voc
		}
		fmt.Printf("%2d. [%d] %s -> %s\n", i+1, item.WordID, prompt, expect)
	}
	return nil
}

func runAnswer(args []string) error {
	fs := flag.NewFlagSet("answer", flag.ExitOnError)
	username := fs.String("user", "", "username answering")
	wordID := fs.Int("word", 0, "word ID")
	correct := fs.Bool("correct", false, "whether the answer was correct")
	fs.Parse(args)

	if *username == "" {
		return fmt.Errorf("answer: -user is required")
	}
	user, err := database.NewUserRepository().GetOrCreate(*username)
	if err != nil {
		return err
	}

	store := database.NewProgressRepository()
	if err := practice.RecordAnswer(store, user.ID, *wordID, *correct, time.Now()); err != nil {
		return err
	}

	p, err := store.GetByUserAndWord(user.ID, *wordID)
	if err != nil {
		return err
	}
	if p != nil && p.Accuracy.Valid {
		fmt.Printf("Word %d: weight %d, accuracy %.2f\n", *wordID, p.Weight, p.Accuracy.Float64)
	}
	return nil
}

func runServe() error {
	var notifier scheduler.Notifier
	if token := os.Getenv("TELEGRAM_BOT_TOKEN"); token != "" {
		tg, err := notify.NewTelegramNotifier(token)
		if err != nil {
			return err
		}
		notifier = tg
	} else {
		log.Println("TELEGRAM_BOT_TOKEN not set, logging reminders instead")
		notifier = notify.LogNotifier{}
	}

	s := scheduler.New(notifier)
	s.Start()
	defer s.Stop()

	log.Println("Scheduler started. Press Ctrl+C to stop.")
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	log.Printf("Received signal: %v, shutting down", sig)
	return nil
}
