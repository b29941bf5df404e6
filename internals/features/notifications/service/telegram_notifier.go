// file: internals/features/notifications/service/telegram_notifier.go
package service

import (
	"fmt"
	"log"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"hrms_backend/internals/features/attendance/model"
)

// Notifier pushes attendance saves to the HR Telegram channel.
// A nil *Notifier is valid and does nothing, so callers never have to
// check whether notifications are configured.
type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewFromEnv returns nil when token or chat id is not configured.
func NewFromEnv(token, chatID string) *Notifier {
	if token == "" || chatID == "" {
		return nil
	}
	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		log.Printf("⚠️ invalid TELEGRAM_CHAT_ID %q: %v", chatID, err)
		return nil
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		log.Printf("⚠️ telegram bot init failed: %v", err)
		return nil
	}
	log.Printf("✅ Telegram notifier enabled (@%s)", bot.Self.UserName)
	return &Notifier{bot: bot, chatID: id}
}

// AttendanceSaved announces a check-in/out. Fire-and-forget: failures
// are logged, never surfaced to the API caller.
func (n *Notifier) AttendanceSaved(rec *model.AttendanceModel, created bool) {
	if n == nil || rec == nil {
		return
	}
	go func() {
		verb := "updated"
		if created {
			verb = "recorded"
		}
		text := fmt.Sprintf("🕐 Attendance %s: %s (%s) on %s — %s",
			verb, rec.AttendanceEmployeeName, rec.AttendanceEmployeeID,
			rec.AttendanceDate, rec.AttendanceStatus)
		if rec.AttendanceCheckIn != nil {
			text += " | in " + *rec.AttendanceCheckIn
		}
		if rec.AttendanceCheckOut != nil {
			text += " | out " + *rec.AttendanceCheckOut
		}
		if _, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, text)); err != nil {
			log.Printf("telegram notify err: %v", err)
		}
	}()
}
