package admin

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"
	"time"
	"topupgame/database"
	"topupgame/helpers"
	"topupgame/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

func sendCSV(c *fiber.Ctx, filename string, records [][]string) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(records); err != nil {
		return helpers.JSONError(c, "FAILED_TO_BUILD_REPORT")
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

func ExportTransactionsCSV(c *fiber.Ctx) error {
	var transactions []models.Transaction
	if err := database.DB.Order("created_at DESC, id DESC").Find(&transactions).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_FETCH_TRANSACTIONS")
	}

	records := [][]string{{
		"id", "username", "game", "paket", "harga", "nickname",
		"payment_method", "game_account_id", "status", "fail_reason", "created_at",
	}}
	for _, t := range transactions {
		records = append(records, []string{
			strconv.FormatUint(uint64(t.ID), 10),
			t.Username,
			t.GameName,
			t.Paket,
			strconv.FormatInt(t.Harga, 10),
			t.Nickname,
			t.PaymentMethod,
			t.GameAccountID,
			t.Status,
			t.FailReason,
			t.CreatedAt.Format(time.RFC3339),
		})
	}
	return sendCSV(c, "transactions.csv", records)
}

func ExportUsersCSV(c *fiber.Ctx) error {
	var users []models.User
	if err := database.DB.Order("username ASC").Find(&users).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_FETCH_USERS")
	}

	records := [][]string{{"id", "username", "role", "email", "default_game_ids", "created_at"}}
	for _, u := range users {
		// nested map gets stringified for the flat spreadsheet
		gameIDs := ""
		if len(u.DefaultGameIDs) > 0 {
			if raw, err := json.Marshal(u.DefaultGameIDs); err == nil {
				gameIDs = string(raw)
			}
		}
		records = append(records, []string{
			strconv.FormatUint(uint64(u.ID), 10),
			u.Username,
			u.Role,
			u.Email,
			gameIDs,
			u.CreatedAt.Format(time.RFC3339),
		})
	}
	return sendCSV(c, "users.csv", records)
}

// TransactionSummary aggregates order counts per status and the revenue from
// completed orders.
func TransactionSummary(c *fiber.Ctx) error {
	var transactions []models.Transaction
	if err := database.DB.Find(&transactions).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_FETCH_TRANSACTIONS")
	}

	counts := map[string]int{
		models.StatusMenunggu: 0,
		models.StatusDiproses: 0,
		models.StatusSelesai:  0,
		models.StatusGagal:    0,
	}
	revenue := decimal.Zero
	for _, t := range transactions {
		counts[t.Status]++
		if t.Status == models.StatusSelesai {
			revenue = revenue.Add(decimal.NewFromInt(t.Harga))
		}
	}

	return helpers.JSONSuccess(c, "Summary retrieved", fiber.Map{
		"total":     len(transactions),
		"by_status": counts,
		"revenue":   revenue.String(),
	})
}
