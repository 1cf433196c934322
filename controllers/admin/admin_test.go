package admin_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"topupgame/database"
	"topupgame/models"
	"topupgame/routes"
	"topupgame/storage"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gocloud.dev/blob/memblob"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()
	os.Setenv("POLL_INTERVAL", "1h")
	os.Setenv("ADMIN_PASSWORD", "admin123")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{}, &models.Game{}, &models.Product{},
		&models.Transaction{}, &models.Review{}, &models.Message{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	database.DB = db
	database.SeedAdmin()
	storage.Default = storage.New(memblob.OpenBucket(nil), "https://cdn.test")

	app := fiber.New()
	routes.Setup(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) map[string]any {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("X-Session-Token", token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var envelope map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode %s %s response: %v", method, path, err)
	}
	return envelope
}

func adminToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	login := doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"username": "admin", "password": "admin123",
	})
	if login["success"] != true {
		t.Fatalf("admin login failed: %v", login["message"])
	}
	return login["data"].(map[string]any)["token"].(string)
}

func userToken(t *testing.T, app *fiber.App, username string) string {
	t.Helper()
	doJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"username": username, "password": "userpw",
	})
	login := doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"username": username, "password": "userpw",
	})
	return login["data"].(map[string]any)["token"].(string)
}

func TestAdminSurfaceRejectsPlainUsers(t *testing.T) {
	app := setupApp(t)
	token := userToken(t, app, "alice")

	out := doJSON(t, app, http.MethodGet, "/admin/games", token, nil)
	if out["success"] != false || out["message"] != "ADMIN_ONLY" {
		t.Fatalf("plain user reached admin surface: %v", out)
	}
}

func TestDeleteGameCascadesToProducts(t *testing.T) {
	app := setupApp(t)
	token := adminToken(t, app)

	game := models.Game{Name: "Mobile Legends"}
	if err := database.DB.Create(&game).Error; err != nil {
		t.Fatalf("seed game: %v", err)
	}
	for _, harga := range []int64{25000, 75000} {
		product := models.Product{GameID: game.ID, Paket: "Diamonds", Harga: harga}
		if err := database.DB.Create(&product).Error; err != nil {
			t.Fatalf("seed product: %v", err)
		}
	}

	out := doJSON(t, app, http.MethodDelete, "/admin/games/"+strconv.Itoa(int(game.ID)), token, nil)
	if out["success"] != true {
		t.Fatalf("delete game failed: %v", out["message"])
	}

	var remaining int64
	database.DB.Model(&models.Product{}).Where("game_id = ?", game.ID).Count(&remaining)
	if remaining != 0 {
		t.Fatalf("%d products survived game deletion", remaining)
	}
}

func TestDeleteUserCascadesToTransactions(t *testing.T) {
	app := setupApp(t)
	token := adminToken(t, app)
	userToken(t, app, "alice")

	var alice models.User
	if err := database.DB.Where("username = ?", "alice").First(&alice).Error; err != nil {
		t.Fatalf("load alice: %v", err)
	}
	for i := 0; i < 2; i++ {
		tx := models.Transaction{
			Username: "alice", GameName: "Free Fire", Paket: "100 Diamonds",
			Harga: 15000, Nickname: "aliceFF", PaymentMethod: "DANA",
			GameAccountID: "555", Status: models.StatusMenunggu,
		}
		if err := database.DB.Create(&tx).Error; err != nil {
			t.Fatalf("seed transaction: %v", err)
		}
	}

	out := doJSON(t, app, http.MethodDelete, "/admin/users/"+strconv.Itoa(int(alice.ID)), token, nil)
	if out["success"] != true {
		t.Fatalf("delete user failed: %v", out["message"])
	}

	var remaining int64
	database.DB.Model(&models.Transaction{}).Where("username = ?", "alice").Count(&remaining)
	if remaining != 0 {
		t.Fatalf("%d transactions survived user deletion", remaining)
	}
}

func TestDeleteAdminAccountRefused(t *testing.T) {
	app := setupApp(t)
	token := adminToken(t, app)

	var admin models.User
	database.DB.Where("username = ?", models.AdminUsername).First(&admin)

	out := doJSON(t, app, http.MethodDelete, "/admin/users/"+strconv.Itoa(int(admin.ID)), token, nil)
	if out["success"] != false || out["message"] != "CANNOT_DELETE_ADMIN" {
		t.Fatalf("admin account deletable: %v", out)
	}
}

func TestUpdateTransactionStatus(t *testing.T) {
	app := setupApp(t)
	token := adminToken(t, app)

	tx := models.Transaction{
		Username: "alice", GameName: "Free Fire", Paket: "100 Diamonds",
		Harga: 15000, Nickname: "aliceFF", PaymentMethod: "DANA",
		GameAccountID: "555", Status: models.StatusDiproses,
	}
	if err := database.DB.Create(&tx).Error; err != nil {
		t.Fatalf("seed transaction: %v", err)
	}
	path := "/admin/transactions/" + strconv.Itoa(int(tx.ID)) + "/status"

	bad := doJSON(t, app, http.MethodPut, path, token, fiber.Map{"status": "Dikirim"})
	if bad["success"] != false || bad["message"] != "INVALID_STATUS" {
		t.Fatalf("unknown status accepted: %v", bad)
	}

	failed := doJSON(t, app, http.MethodPut, path, token, fiber.Map{
		"status": models.StatusGagal, "reason": "ID game tidak ditemukan",
	})
	if failed["success"] != true {
		t.Fatalf("set Gagal failed: %v", failed["message"])
	}

	var stored models.Transaction
	database.DB.First(&stored, tx.ID)
	if stored.Status != models.StatusGagal || stored.FailReason != "ID game tidak ditemukan" {
		t.Fatalf("failure not recorded: %+v", stored)
	}

	// Moving out of Gagal clears the stale reason.
	doJSON(t, app, http.MethodPut, path, token, fiber.Map{"status": models.StatusSelesai})
	database.DB.First(&stored, tx.ID)
	if stored.Status != models.StatusSelesai || stored.FailReason != "" {
		t.Fatalf("stale failure reason kept: %+v", stored)
	}
}

func TestReviewModerationHidesFromCatalog(t *testing.T) {
	app := setupApp(t)
	token := adminToken(t, app)
	alice := userToken(t, app, "alice")

	game := models.Game{Name: "Mobile Legends"}
	if err := database.DB.Create(&game).Error; err != nil {
		t.Fatalf("seed game: %v", err)
	}
	review := models.Review{GameID: game.ID, Username: "alice", Rating: 5, Comment: "mantap", Visible: true}
	if err := database.DB.Create(&review).Error; err != nil {
		t.Fatalf("seed review: %v", err)
	}

	out := doJSON(t, app, http.MethodPut,
		"/admin/reviews/"+strconv.Itoa(int(review.ID))+"/visibility", token, fiber.Map{"visible": false})
	if out["success"] != true {
		t.Fatalf("hide review failed: %v", out["message"])
	}

	listing := doJSON(t, app, http.MethodGet,
		"/user/games/"+strconv.Itoa(int(game.ID))+"/reviews", alice, nil)
	if visible := listing["data"].([]any); len(visible) != 0 {
		t.Fatalf("hidden review still listed: %v", visible)
	}
}

func TestExportTransactionsCSV(t *testing.T) {
	app := setupApp(t)
	token := adminToken(t, app)

	for _, status := range []string{models.StatusSelesai, models.StatusMenunggu} {
		tx := models.Transaction{
			Username: "alice", GameName: "Free Fire", Paket: "100 Diamonds",
			Harga: 15000, Nickname: "aliceFF", PaymentMethod: "DANA",
			GameAccountID: "555", Status: status,
		}
		if err := database.DB.Create(&tx).Error; err != nil {
			t.Fatalf("seed transaction: %v", err)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/reports/transactions.csv", nil)
	req.Header.Set("X-Session-Token", token)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "text/csv" {
		t.Fatalf("unexpected content type %s", ct)
	}
	records, err := csv.NewReader(resp.Body).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(records))
	}
	if records[0][0] != "id" || records[0][8] != "status" {
		t.Fatalf("unexpected header: %v", records[0])
	}
}

func TestTransactionSummaryRevenue(t *testing.T) {
	app := setupApp(t)
	token := adminToken(t, app)

	seed := []struct {
		status string
		harga  int64
	}{
		{models.StatusSelesai, 75000},
		{models.StatusSelesai, 25000},
		{models.StatusMenunggu, 65000},
		{models.StatusGagal, 15000},
	}
	for _, s := range seed {
		tx := models.Transaction{
			Username: "alice", GameName: "Free Fire", Paket: "Diamonds",
			Harga: s.harga, Nickname: "aliceFF", PaymentMethod: "DANA",
			GameAccountID: "555", Status: s.status,
		}
		if err := database.DB.Create(&tx).Error; err != nil {
			t.Fatalf("seed transaction: %v", err)
		}
	}

	out := doJSON(t, app, http.MethodGet, "/admin/reports/summary", token, nil)
	if out["success"] != true {
		t.Fatalf("summary failed: %v", out["message"])
	}
	data := out["data"].(map[string]any)
	if data["revenue"] != "100000" {
		t.Fatalf("wrong revenue: %v", data["revenue"])
	}
	byStatus := data["by_status"].(map[string]any)
	if byStatus[models.StatusSelesai] != float64(2) || byStatus[models.StatusMenunggu] != float64(1) {
		t.Fatalf("wrong counts: %v", byStatus)
	}
}
