package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/cargeniefortmyers/car-genies-referral/internal/client/app"
	"github.com/cargeniefortmyers/car-genies-referral/internal/client/gateway"
	"github.com/cargeniefortmyers/car-genies-referral/internal/client/view"
	"github.com/cargeniefortmyers/car-genies-referral/internal/config"
	"github.com/cargeniefortmyers/car-genies-referral/internal/logger"
	"github.com/cargeniefortmyers/car-genies-referral/internal/models"
)

var (
	version   string
	buildDate string
)

// repl runs the interactive shell loop, translating commands into intents
// for the controller and re-rendering the current screen after each one.
func repl(c *app.Controller) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Print(view.Render(c.State()))

	for {
		fmt.Print("car-genies> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		ctx := context.Background()

		switch args[0] {
		case "help":
			fmt.Println("Commands: help, goto <screen>, set <field> <value>, login, register, submit,")
			fmt.Println("  status <id> <pending|approved|completed|rejected>, refresh, lang <code>,")
			fmt.Println("  settings, close, payout <paypal|cashapp>, paypal <email>, cashapp <tag>,")
			fmt.Println("  minimum <amount>, toggle <notifications|autopayouts>, signout, exit")
			continue
		case "goto":
			if len(args) < 2 {
				fmt.Println("Usage: goto <login|register|dashboard|addReferral|history>")
				continue
			}
			if !c.NavigateTo(app.Screen(args[1])) {
				fmt.Println("Screen not available")
				continue
			}
		case "set":
			parts := strings.SplitN(line, " ", 3)
			if len(parts) < 3 {
				fmt.Println("Usage: set <field> <value>")
				continue
			}
			if !c.SetField(parts[1], parts[2]) {
				fmt.Println("Current screen has no form")
				continue
			}
		case "login":
			c.Login(ctx)
		case "register":
			c.Register(ctx)
		case "submit":
			c.SubmitReferral(ctx)
		case "status":
			if len(args) < 3 {
				fmt.Println("Usage: status <id> <new-status>")
				continue
			}
			if !models.ValidStatus(models.Status(args[2])) {
				fmt.Println("Unknown status:", args[2])
				continue
			}
			c.UpdateStatus(ctx, args[1], models.Status(args[2]))
		case "refresh":
			c.Refresh(ctx)
		case "lang":
			if len(args) < 2 || !c.SetLanguage(args[1]) {
				fmt.Println("Supported languages: en, es, fr, ht")
				continue
			}
		case "settings":
			if !c.OpenSettings() {
				fmt.Println("Sign in first")
				continue
			}
		case "close":
			c.CloseSettings()
		case "payout":
			if len(args) < 2 || !c.SetPayoutMethod(models.PayoutMethod(args[1])) {
				fmt.Println("Usage: payout <paypal|cashapp>")
				continue
			}
		case "paypal":
			if len(args) < 2 {
				fmt.Println("Usage: paypal <email>")
				continue
			}
			c.SetPayPalEmail(args[1])
		case "cashapp":
			if len(args) < 2 {
				fmt.Println("Usage: cashapp <tag>")
				continue
			}
			c.SetCashAppTag(args[1])
		case "minimum":
			if len(args) < 2 {
				fmt.Println("Usage: minimum <amount>")
				continue
			}
			amount, err := strconv.ParseFloat(args[1], 64)
			if err != nil || !c.SetMinimumPayout(amount) {
				fmt.Println("Usage: minimum <amount>")
				continue
			}
		case "toggle":
			if len(args) < 2 {
				fmt.Println("Usage: toggle <notifications|autopayouts>")
				continue
			}
			switch args[1] {
			case "notifications":
				c.ToggleNotifications()
			case "autopayouts":
				c.ToggleAutoPayouts()
			default:
				fmt.Println("Usage: toggle <notifications|autopayouts>")
				continue
			}
		case "signout":
			c.SignOut(ctx)
		case "exit":
			fmt.Println("Bye")
			return
		default:
			fmt.Println("Unknown command. Type 'help' for a list of commands.")
			continue
		}

		fmt.Print(view.Render(c.State()))
	}
}

// main parses configuration and starts the interactive client.
func main() {
	var showVer bool
	flag.BoolVar(&showVer, "version", false, "show build version and date")
	options := config.Parse()

	if showVer {
		fmt.Printf("Car Genies Referral Client\nVersion: %s\nBuild Date: %s\n", version, buildDate)
		return
	}

	log := logger.New()
	if err := log.Init(options.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, "failed to init logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Log.Sync() }()

	log.Log.Info("starting client",
		zap.String("base_url", options.BaseURL),
		zap.String("language", options.Language),
	)

	gw := gateway.New(options.BaseURL, &http.Client{Timeout: options.HTTPTimeout}, log.Log)
	controller := app.New(gw, log.Log, options.Language)

	repl(controller)
}
