package main

import (
	"Showcase/i18n"
	"Showcase/slider"
	"Showcase/ui"
	"embed"
	"fmt"
	"log"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
)

//go:embed assets/*
var content embed.FS

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgFile string
		lang    string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "showcase",
		Short: "Product showcase with an auto-playing image slider",
		Long: `Showcase presents a deck of slides that advance on their own,
pause while the pointer rests on them or the window is in the background,
and respond to buttons, dots, arrow keys and swipes. A contact form with
validation lives in the second tab.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfgFile, lang, verbose)
		},
	}

	cmd.Flags().StringVar(&cfgFile, "config", "", "YAML file overriding the built-in deck and timing")
	cmd.Flags().StringVar(&lang, "lang", "", "UI language (en, pt, es, ru); defaults to the system locale")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every input and slide change")
	return cmd
}

func run(cfgFile, lang string, verbose bool) error {
	if lang != "" {
		i18n.SetLang(lang)
	}

	cfg, err := slider.LoadConfig(content, cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	fyneApp := app.New()

	if iconBytes, err := content.ReadFile("assets/icon.png"); err == nil {
		fyneApp.SetIcon(fyne.NewStaticResource("icon.png", iconBytes))
	} else {
		log.Printf("Failed to load icon. %v", err)
	}

	fyneApp.Settings().SetTheme(ui.NewCustomTheme(ui.BrandColor))

	a := NewAppManager(content, cfg, verbose)

	w := ui.CreateMainWindow(a, fyneApp)
	a.mainWindow = w
	w.SetOnClosed(a.Shutdown)

	w.ShowAndRun()
	return nil
}
