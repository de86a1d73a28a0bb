package bot

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/mwalto7/statbot/internal/service"
)

type Handler struct {
	statsService *service.StatsService
}

func NewHandler(statsService *service.StatsService) *Handler {
	return &Handler{statsService: statsService}
}

func (h *Handler) HandleCommand(update tgbotapi.Update) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	command := strings.ToLower(update.Message.Command())
	args := update.Message.CommandArguments()
	msg.ParseMode = "Markdown"

	switch command {
	case "start":
		msg.Text = "Welcome to StatBot! Use /help to see available commands."
	case "help":
		msg.Text = "Available commands:\n/awards - Weekly awards and trophies\n/efficiency - Lineup efficiency rankings\n/trio - Best QB/RB/receiver trio rankings\n/luck - Season luck index rankings\n/standings - League standings\n/season - Season summary\n/gotw <owner> vs <owner> - Head-to-head breakdown"
	case "awards":
		h.report(&msg, h.statsService.WeeklyAwardsReport)
	case "efficiency":
		h.report(&msg, h.statsService.EfficiencyReport)
	case "trio":
		h.report(&msg, h.statsService.TrioReport)
	case "luck":
		h.report(&msg, h.statsService.LuckReport)
	case "standings":
		h.report(&msg, h.statsService.StandingsReport)
	case "season":
		h.report(&msg, h.statsService.SeasonSummaryReport)
	case "gotw":
		h.handleGameOfTheWeek(&msg, args)
	default:
		msg.Text = "Unknown command. Use /help to see available commands."
	}

	return msg
}

func (h *Handler) report(msg *tgbotapi.MessageConfig, build func() (string, error)) {
	text, err := build()
	if err != nil {
		msg.Text = fmt.Sprintf("Error building report: %v", err)
		return
	}
	msg.Text = text
}

func (h *Handler) handleGameOfTheWeek(msg *tgbotapi.MessageConfig, args string) {
	if args == "" {
		msg.Text = "Usage: /gotw <owner> vs <owner>"
		return
	}
	text, err := h.statsService.GameOfTheWeek(args)
	if err != nil {
		msg.Text = fmt.Sprintf("Error building game of the week: %v", err)
		return
	}
	msg.Text = text
}
