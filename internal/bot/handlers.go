package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/omarshaarawi/pennantbot/internal/engine"
	"github.com/omarshaarawi/pennantbot/internal/scheduler"
	"github.com/omarshaarawi/pennantbot/internal/service"
)

// AutoAdvancer controls the timer that plays days automatically.
type AutoAdvancer interface {
	StartAuto(interval time.Duration) error
	StopAuto() error
	SetSpeed(interval time.Duration) error
	Interval() time.Duration
}

type Handler struct {
	pennantService *service.PennantService
	auto           AutoAdvancer
}

func NewHandler(pennantService *service.PennantService) *Handler {
	return &Handler{pennantService: pennantService}
}

const helpText = "Available commands:\n" +
	"/play - Play today's games\n" +
	"/auto [interval] - Play a day every interval (e.g. 3s)\n" +
	"/stop - Stop auto play\n" +
	"/speed <interval> - Change auto play speed\n" +
	"/standings - League standings\n" +
	"/team <team> [pitchers|fielders] - Team roster\n" +
	"/player <name> - Player card\n" +
	"/train <team> <batting|speed|defense|pitching> - Daily training\n" +
	"/results [days] - Recent results\n" +
	"/leaders - League leaders\n" +
	"/status - Season progress\n" +
	"/newseason - Start a new season"

func (h *Handler) HandleCommand(update tgbotapi.Update) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	msg.ParseMode = "Markdown"
	msg.Text = h.respond(strings.ToLower(update.Message.Command()), update.Message.CommandArguments())
	return msg
}

func (h *Handler) respond(command, args string) string {
	args = strings.TrimSpace(args)

	switch command {
	case "start":
		return "Welcome to PennantBot! Use /help to see available commands."
	case "help":
		return helpText
	case "play":
		return h.handlePlay()
	case "auto":
		return h.handleAuto(args)
	case "stop":
		return h.handleStop()
	case "speed":
		return h.handleSpeed(args)
	case "standings":
		return reply(h.pennantService.GetStandings())
	case "team":
		return h.handleTeam(args)
	case "player":
		if args == "" {
			return "Please provide a player name. Usage: /player <name>"
		}
		return reply(h.pennantService.GetPlayer(args))
	case "train":
		return h.handleTrain(args)
	case "results":
		return h.handleResults(args)
	case "leaders":
		return reply(h.pennantService.GetLeaders())
	case "status":
		return h.handleStatus()
	case "newseason":
		if h.auto != nil {
			h.auto.StopAuto()
		}
		return h.pennantService.NewSeason()
	default:
		return "Unknown command. Use /help to see available commands."
	}
}

func reply(text string, err error) string {
	if err != nil {
		return errorText(err)
	}
	return text
}

func errorText(err error) string {
	switch {
	case errors.Is(err, service.ErrNoSeason):
		return "No season in progress. Use /newseason to start one."
	case errors.Is(err, engine.ErrSeasonOver):
		return "🏁 The season is over. Use /newseason to start another."
	case errors.Is(err, engine.ErrAlreadyPracticed):
		return "Training was already used today. Play the next day first."
	case errors.Is(err, engine.ErrUnknownDrill):
		return "Unknown drill. Choose batting, speed, defense or pitching."
	case errors.Is(err, scheduler.ErrAutoRunning):
		return "Auto play is already running."
	case errors.Is(err, scheduler.ErrAutoStopped):
		return "Auto play is not running."
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

func (h *Handler) handlePlay() string {
	return reply(h.pennantService.PlayDay())
}

func (h *Handler) handleAuto(args string) string {
	if h.auto == nil {
		return "Auto play is not available."
	}
	var interval time.Duration
	if args != "" {
		var err error
		if interval, err = parseInterval(args); err != nil {
			return fmt.Sprintf("Invalid interval %q. Usage: /auto [interval]", args)
		}
	}
	if h.pennantService.SeasonFinished() {
		return errorText(engine.ErrSeasonOver)
	}
	if err := h.auto.StartAuto(interval); err != nil {
		return errorText(err)
	}
	return fmt.Sprintf("▶️ Auto play started, one day every %s.", h.auto.Interval())
}

func (h *Handler) handleStop() string {
	if h.auto == nil {
		return "Auto play is not available."
	}
	if err := h.auto.StopAuto(); err != nil {
		return errorText(err)
	}
	return "⏸️ Auto play stopped."
}

func (h *Handler) handleSpeed(args string) string {
	if h.auto == nil {
		return "Auto play is not available."
	}
	if args == "" {
		return "Please provide an interval. Usage: /speed <interval>"
	}
	interval, err := parseInterval(args)
	if err != nil {
		return fmt.Sprintf("Invalid interval %q. Usage: /speed <interval>", args)
	}
	if err := h.auto.SetSpeed(interval); err != nil {
		return errorText(err)
	}
	return fmt.Sprintf("⏩ Auto play speed set to one day every %s.", interval)
}

var rosterFilters = map[string]bool{
	"pitchers": true, "pitcher": true, "fielders": true, "fielder": true, "batters": true,
}

func (h *Handler) handleTeam(args string) string {
	if args == "" {
		return "Please provide a team name. Usage: /team <team> [pitchers|fielders]"
	}
	team, filter := splitLast(args, func(w string) bool { return rosterFilters[strings.ToLower(w)] })
	if team == "" {
		return "Please provide a team name. Usage: /team <team> [pitchers|fielders]"
	}
	return reply(h.pennantService.GetTeamRoster(team, filter))
}

func (h *Handler) handleTrain(args string) string {
	team, drill := splitLast(args, func(w string) bool {
		_, err := engine.ParseDrill(w)
		return err == nil
	})
	if team == "" || drill == "" {
		return "Usage: /train <team> <batting|speed|defense|pitching>"
	}
	return reply(h.pennantService.Practice(team, drill))
}

func (h *Handler) handleResults(args string) string {
	days := 1
	if args != "" {
		n, err := strconv.Atoi(args)
		if err != nil || n < 1 {
			return "Usage: /results [days]"
		}
		days = n
	}
	return reply(h.pennantService.GetRecentResults(days))
}

func (h *Handler) handleStatus() string {
	status, err := h.pennantService.GetStatus()
	if err != nil {
		return errorText(err)
	}
	if h.auto != nil {
		status += fmt.Sprintf("Auto play interval: %s\n", h.auto.Interval())
	}
	return status
}

// splitLast separates a trailing keyword accepted by match from the rest of args.
func splitLast(args string, match func(string) bool) (string, string) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return "", ""
	}
	last := fields[len(fields)-1]
	if !match(last) {
		return strings.Join(fields, " "), ""
	}
	return strings.Join(fields[:len(fields)-1], " "), last
}

// parseInterval accepts Go durations ("3s", "1m") or plain milliseconds.
func parseInterval(s string) (time.Duration, error) {
	if ms, err := strconv.Atoi(s); err == nil {
		return time.Duration(ms) * time.Millisecond, nil
	}
	return time.ParseDuration(s)
}
