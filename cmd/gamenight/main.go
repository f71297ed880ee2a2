package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	service "github.com/gravina/gamenight/internal/app"
	"github.com/gravina/gamenight/internal/config"
	"github.com/gravina/gamenight/pkg/logger"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return 1
	}

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return 1
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		logger.Get().Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	if len(args) == 0 {
		showHelp()
		return 1
	}

	svc := service.New(cfg, service.WithLogger(logger.Get()))

	switch args[0] {
	case "award":
		return cmdAward(ctx, svc, args[1:])
	case "play":
		return cmdPlay(ctx, svc, args[1:])
	case "list":
		return cmdList(ctx, svc)
	case "events":
		return cmdEvents(ctx, svc)
	case "plays":
		return cmdPlays(ctx, svc)
	case "rebuild":
		return cmdRebuild(ctx, svc)
	case "tokens":
		return cmdTokens(ctx, svc, args[1:])
	case "serve":
		return cmdServe(ctx, svc, cfg, args[1:])
	case "help", "-h", "--help":
		showHelp()
		return 0
	default:
		os.Stderr.WriteString("unknown command: " + args[0] + "\n")
		showHelp()
		return 1
	}
}

func cmdAward(ctx context.Context, svc *service.Service, args []string) int {
	fs := flag.NewFlagSet("award", flag.ExitOnError)
	var (
		player    = fs.String("player", "", "Player receiving the points")
		points    = fs.Int("points", 0, "Points to award")
		reason    = fs.String("reason", "", "Short description (e.g. 'Won Catan final table')")
		event     = fs.String("event", "", "Event name (default: Game Night <date>)")
		date      = fs.String("date", "", "Event date (YYYY-MM-DD)")
		timestamp = fs.String("timestamp", "", "Exact timestamp for the award (ISO 8601, default: now)")
	)
	_ = fs.Parse(args)

	pointsSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "points" {
			pointsSet = true
		}
	})

	reader := bufio.NewReader(os.Stdin)

	in := service.AwardInput{
		Player:    *player,
		Points:    *points,
		Reason:    *reason,
		Event:     *event,
		Date:      *date,
		Timestamp: *timestamp,
	}
	if in.Player == "" {
		in.Player = prompt(reader, "Player name: ")
	}
	if in.Player == "" {
		os.Stderr.WriteString("Player name is required.\n")
		return 1
	}
	if in.Reason == "" {
		in.Reason = prompt(reader, "Reason for points: ")
	}
	if !pointsSet {
		in.Points = promptInt(reader, "Points awarded: ")
	}
	if in.Date == "" {
		in.Date = prompt(reader, "Event date (YYYY-MM-DD, blank for today): ")
	}
	if in.Event == "" {
		in.Event = prompt(reader, "Event name (e.g. Game Night #9): ")
	}

	if err := svc.Award(ctx, in); err != nil {
		os.Stderr.WriteString("award failed: " + err.Error() + "\n")
		return 1
	}
	fmt.Printf("Awarded %d pts to %s.\n", in.Points, strings.TrimSpace(in.Player))
	return 0
}

func cmdPlay(ctx context.Context, svc *service.Service, args []string) int {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	var (
		game     = fs.String("game", "", "Game that was played")
		date     = fs.String("date", "", "Play date (YYYY-MM-DD, default: today)")
		event    = fs.String("event", "", "Event the play belongs to")
		notes    = fs.String("notes", "", "Free-form notes")
		unscored = fs.Bool("unscored", false, "Record the play without deriving points")
	)
	_ = fs.Parse(args)

	reader := bufio.NewReader(os.Stdin)

	in := service.PlayInput{
		Game:   *game,
		Date:   *date,
		Event:  *event,
		Notes:  *notes,
		Scored: !*unscored,
	}
	if in.Game == "" {
		in.Game = prompt(reader, "Game name: ")
	}

	// Results come as positional args: name or name:placement.
	specs := fs.Args()
	if len(specs) == 0 {
		fmt.Println("Enter results as 'name' or 'name:placement' (blank line to finish):")
		for {
			line := prompt(reader, "> ")
			if line == "" {
				break
			}
			specs = append(specs, line)
		}
	}
	for _, spec := range specs {
		result, err := parseResultSpec(spec)
		if err != nil {
			os.Stderr.WriteString(err.Error() + "\n")
			return 1
		}
		in.Results = append(in.Results, result)
	}

	play, err := svc.RecordPlay(ctx, in)
	if err != nil {
		if errors.Is(err, service.ErrNoResults) {
			os.Stderr.WriteString("At least one player result is required.\n")
			return 1
		}
		os.Stderr.WriteString("play failed: " + err.Error() + "\n")
		return 1
	}
	fmt.Printf("Recorded %s with %d result(s) on %s.\n", play.Game, len(play.Results), play.Date)
	return 0
}

// parseResultSpec parses "name" or "name:placement" into a result input.
func parseResultSpec(spec string) (service.PlayResultInput, error) {
	name, rest, found := strings.Cut(spec, ":")
	result := service.PlayResultInput{Player: name}
	if !found {
		return result, nil
	}
	placement, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil {
		return result, fmt.Errorf("invalid placement in %q: expected a number", spec)
	}
	result.Placement = &placement
	return result, nil
}

func cmdList(ctx context.Context, svc *service.Service) int {
	snap, err := svc.Rebuild(ctx)
	if err != nil {
		os.Stderr.WriteString("rebuild failed: " + err.Error() + "\n")
		return 1
	}
	rows := snap.Leaderboard
	if len(rows) == 0 {
		fmt.Println("No awards logged yet.")
		return 0
	}

	nameWidth := len("Player")
	pointsWidth := len("Points")
	for _, row := range rows {
		if len(row.Player) > nameWidth {
			nameWidth = len(row.Player)
		}
		if w := len(strconv.Itoa(row.Points)); w > pointsWidth {
			pointsWidth = w
		}
	}

	fmt.Printf("%-6s%-*s  %*s  Top awards\n", "Rank", nameWidth, "Player", pointsWidth, "Points")
	fmt.Println(strings.Repeat("-", nameWidth+pointsWidth+20))
	for _, row := range rows {
		topAward := ""
		if len(row.Breakdown) > 0 {
			topAward = row.Breakdown[0].Reason
		}
		fmt.Printf("#%-5d%-*s  %*d  %s\n", row.Rank, nameWidth, row.Player, pointsWidth, row.Points, topAward)
	}
	return 0
}

func cmdEvents(ctx context.Context, svc *service.Service) int {
	events, err := svc.EventLog(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to read events: " + err.Error() + "\n")
		return 1
	}
	if len(events) == 0 {
		fmt.Println("No events recorded yet.")
		return 0
	}
	for _, event := range events {
		date := event.Date
		if date == "" {
			date = "Unknown date"
		}
		name := event.Name
		if name == "" {
			name = "Game Night"
		}
		fmt.Printf("%s - %s\n", date, name)
		for _, award := range event.Awards {
			fmt.Printf("  +%d pts to %s: %s\n", award.Points, award.Player, award.Reason)
		}
		fmt.Println()
	}
	return 0
}

func cmdPlays(ctx context.Context, svc *service.Service) int {
	plays, err := svc.PlayLog(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to read plays: " + err.Error() + "\n")
		return 1
	}
	if len(plays) == 0 {
		fmt.Println("No plays recorded yet.")
		return 0
	}
	for _, play := range plays {
		label := "unscored"
		if play.Scored {
			label = "scored"
		}
		fmt.Printf("%s - %s (%s)\n", play.Date, play.Game, label)
		for _, result := range play.Results {
			if result.Placement != nil {
				fmt.Printf("  %s finished %s\n", result.Player, ordinal(*result.Placement))
			} else {
				fmt.Printf("  %s participated\n", result.Player)
			}
		}
		fmt.Println()
	}
	return 0
}

// ordinal renders small placements for display.
func ordinal(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return strconv.Itoa(n) + "th"
	}
}

func cmdRebuild(ctx context.Context, svc *service.Service) int {
	if _, err := svc.Rebuild(ctx); err != nil {
		os.Stderr.WriteString("rebuild failed: " + err.Error() + "\n")
		return 1
	}
	fmt.Println("Leaderboard rebuilt.")
	return 0
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func promptInt(reader *bufio.Reader, label string) int {
	for {
		fmt.Print(label)
		line, readErr := reader.ReadString('\n')
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil {
			return n
		}
		if readErr != nil {
			// Input exhausted; treat as zero rather than looping.
			return 0
		}
		os.Stderr.WriteString("Please enter a whole number.\n")
	}
}

func showHelp() {
	os.Stdout.WriteString(`Game Night Leaderboard
======================

Maintains the game night ledgers and publishes the leaderboard snapshot.

Usage:
  gamenight <command> [options]

Commands:
  award    Award points to a player
  play     Record a game play with placements
  list     Show the current leaderboard
  events   Show the event log with awards
  plays    Show the play log
  rebuild  Rebuild the published snapshot without changes
  tokens   Manage guest tokens (add, list, remove)
  serve    Preview the published snapshot over HTTP

Configuration comes from defaults, an optional YAML file named by
GAMENIGHT_CONFIG, and GAMENIGHT_* environment variables.

Examples:
  gamenight award -player Alice -points 10 -reason "Won Catan"
  gamenight play -game Catan alice:1 bob:2 cara
  gamenight tokens add Alice Bob
  gamenight serve -addr :9080
`)
}
