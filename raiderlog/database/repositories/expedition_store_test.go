package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/raiderlog/raiderlog/raiderlog/database"
	"github.com/raiderlog/raiderlog/raiderlog/database/models"
	"github.com/raiderlog/raiderlog/raiderlog/expedition"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "modernc.org/sqlite"
)

func testDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	sqldb.SetMaxOpenConns(1)
	t.Cleanup(func() { sqldb.Close() })

	db := bun.NewDB(sqldb, sqlitedialect.New())
	if err := database.CreateSchema(context.Background(), db); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
	return db
}

func seedProfile(t *testing.T, db *bun.DB, level int) *models.RaiderProfile {
	t.Helper()
	profile := &models.RaiderProfile{
		UserID:          "user-1",
		DisplayName:     "Scrapper",
		ExpeditionLevel: level,
		Active:          true,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	if _, err := db.NewInsert().Model(profile).Exec(context.Background()); err != nil {
		t.Fatalf("failed to seed profile: %v", err)
	}
	return profile
}

func seedRequirement(t *testing.T, db *bun.DB, level, part int, item string) {
	t.Helper()
	requirement := &models.ExpeditionRequirement{
		ExpeditionLevel: level,
		PartNumber:      part,
		ItemName:        item,
		Quantity:        1,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
	if _, err := db.NewInsert().Model(requirement).Exec(context.Background()); err != nil {
		t.Fatalf("failed to seed requirement: %v", err)
	}
}

func countRows(t *testing.T, db *bun.DB, model interface{}, profileID int64) int {
	t.Helper()
	n, err := db.NewSelect().
		Model(model).
		Where("raider_profile_id = ?", profileID).
		Count(context.Background())
	if err != nil {
		t.Fatalf("failed to count rows for %T: %v", model, err)
	}
	return n
}

func TestAdvance_EndToEnd_WipesAllFactTables(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	profile := seedProfile(t, db, 2)

	seedRequirement(t, db, 2, 1, "Wire")
	seedRequirement(t, db, 2, 1, "Battery")
	seedRequirement(t, db, 3, 1, "Fuel Cell")

	progress := NewProgressRepository(db)
	if err := progress.SetItemCompleted(ctx, profile.ID, "Part 1", "Wire"); err != nil {
		t.Fatalf("SetItemCompleted: %v", err)
	}
	if err := progress.SetItemCompleted(ctx, profile.ID, "Part 1", "Battery"); err != nil {
		t.Fatalf("SetItemCompleted: %v", err)
	}
	if err := progress.SetQuestCompleted(ctx, profile.ID, 11); err != nil {
		t.Fatalf("SetQuestCompleted: %v", err)
	}
	if err := progress.SetBlueprintOwned(ctx, profile.ID, 22); err != nil {
		t.Fatalf("SetBlueprintOwned: %v", err)
	}
	if err := progress.SetWorkbenchCompleted(ctx, profile.ID, 33); err != nil {
		t.Fatalf("SetWorkbenchCompleted: %v", err)
	}
	if err := progress.SetPartCompleted(ctx, profile.ID, "Part 1"); err != nil {
		t.Fatalf("SetPartCompleted: %v", err)
	}

	advancer := expedition.NewAdvancer(NewExpeditionStore(db))
	result, err := advancer.Advance(ctx, profile.ID)
	if err != nil {
		t.Fatalf("Advance() error = %v", err)
	}
	if result.NewExpeditionLevel != 3 {
		t.Errorf("Advance() new level = %d, want 3", result.NewExpeditionLevel)
	}

	var updated models.RaiderProfile
	if err := db.NewSelect().Model(&updated).Where("id = ?", profile.ID).Scan(ctx); err != nil {
		t.Fatalf("failed to reload profile: %v", err)
	}
	if updated.ExpeditionLevel != 3 {
		t.Errorf("profile level = %d, want 3", updated.ExpeditionLevel)
	}

	facts := []interface{}{
		(*models.CompletedQuest)(nil),
		(*models.OwnedBlueprint)(nil),
		(*models.CompletedWorkbench)(nil),
		(*models.CompletedExpeditionPart)(nil),
		(*models.CompletedExpeditionItem)(nil),
	}
	for _, fact := range facts {
		if n := countRows(t, db, fact, profile.ID); n != 0 {
			t.Errorf("%T rows after advance = %d, want 0", fact, n)
		}
	}
}

func TestAdvance_EndToEnd_IncompleteLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	profile := seedProfile(t, db, 2)

	seedRequirement(t, db, 2, 1, "Wire")
	seedRequirement(t, db, 2, 1, "Battery")
	seedRequirement(t, db, 3, 1, "Fuel Cell")

	progress := NewProgressRepository(db)
	if err := progress.SetItemCompleted(ctx, profile.ID, "Part 1", "Wire"); err != nil {
		t.Fatalf("SetItemCompleted: %v", err)
	}
	if err := progress.SetQuestCompleted(ctx, profile.ID, 11); err != nil {
		t.Fatalf("SetQuestCompleted: %v", err)
	}

	advancer := expedition.NewAdvancer(NewExpeditionStore(db))
	_, err := advancer.Advance(ctx, profile.ID)

	var incomplete *expedition.IncompleteError
	if !errors.As(err, &incomplete) {
		t.Fatalf("Advance() error = %v, want IncompleteError", err)
	}
	if incomplete.Total != 2 {
		t.Errorf("IncompleteError total = %d, want 2", incomplete.Total)
	}

	var unchanged models.RaiderProfile
	if err := db.NewSelect().Model(&unchanged).Where("id = ?", profile.ID).Scan(ctx); err != nil {
		t.Fatalf("failed to reload profile: %v", err)
	}
	if unchanged.ExpeditionLevel != 2 {
		t.Errorf("profile level = %d, want 2 (unchanged)", unchanged.ExpeditionLevel)
	}
	if n := countRows(t, db, (*models.CompletedExpeditionItem)(nil), profile.ID); n != 1 {
		t.Errorf("completed items after failed advance = %d, want 1", n)
	}
	if n := countRows(t, db, (*models.CompletedQuest)(nil), profile.ID); n != 1 {
		t.Errorf("completed quests after failed advance = %d, want 1", n)
	}
}

func TestAdvance_EndToEnd_NextLevelUnavailable(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	profile := seedProfile(t, db, 5)

	seedRequirement(t, db, 5, 1, "Fuel Cell")

	progress := NewProgressRepository(db)
	if err := progress.SetItemCompleted(ctx, profile.ID, "Part 1", "Fuel Cell"); err != nil {
		t.Fatalf("SetItemCompleted: %v", err)
	}

	advancer := expedition.NewAdvancer(NewExpeditionStore(db))
	_, err := advancer.Advance(ctx, profile.ID)

	var notAvailable *expedition.NotAvailableError
	if !errors.As(err, &notAvailable) {
		t.Fatalf("Advance() error = %v, want NotAvailableError", err)
	}
	if notAvailable.Level != 5 {
		t.Errorf("NotAvailableError level = %d, want 5", notAvailable.Level)
	}

	if n := countRows(t, db, (*models.CompletedExpeditionItem)(nil), profile.ID); n != 1 {
		t.Errorf("completed items after blocked advance = %d, want 1", n)
	}
}

func TestAdvance_EndToEnd_MissingProfile(t *testing.T) {
	db := testDB(t)

	advancer := expedition.NewAdvancer(NewExpeditionStore(db))
	_, err := advancer.Advance(context.Background(), 999)
	if !errors.Is(err, expedition.ErrProfileNotFound) {
		t.Errorf("Advance() error = %v, want ErrProfileNotFound", err)
	}
}

func TestProgressRepository_ToggleIdempotency(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)
	profile := seedProfile(t, db, 1)

	progress := NewProgressRepository(db)
	for i := 0; i < 3; i++ {
		if err := progress.SetItemCompleted(ctx, profile.ID, "Part 1", "Wire"); err != nil {
			t.Fatalf("SetItemCompleted attempt %d: %v", i, err)
		}
	}
	if n := countRows(t, db, (*models.CompletedExpeditionItem)(nil), profile.ID); n != 1 {
		t.Errorf("completed items after repeated check = %d, want 1", n)
	}

	if err := progress.ClearItemCompleted(ctx, profile.ID, "Part 1", "Wire"); err != nil {
		t.Fatalf("ClearItemCompleted: %v", err)
	}
	// Unchecking something never checked is a no-op.
	if err := progress.ClearItemCompleted(ctx, profile.ID, "Part 1", "Wire"); err != nil {
		t.Fatalf("ClearItemCompleted (repeat): %v", err)
	}
	if n := countRows(t, db, (*models.CompletedExpeditionItem)(nil), profile.ID); n != 0 {
		t.Errorf("completed items after uncheck = %d, want 0", n)
	}
}

func TestProfileRepository_UniquePerUser(t *testing.T) {
	ctx := context.Background()
	db := testDB(t)

	repo := NewProfileRepository(db)
	first := &models.RaiderProfile{UserID: "user-1", DisplayName: "Scrapper"}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if first.ExpeditionLevel != 1 {
		t.Errorf("new profile level = %d, want 1", first.ExpeditionLevel)
	}

	second := &models.RaiderProfile{UserID: "user-1", DisplayName: "Duplicate"}
	if err := repo.Create(ctx, second); !errors.Is(err, ErrProfileExists) {
		t.Errorf("Create() duplicate error = %v, want ErrProfileExists", err)
	}
}

func TestAdvanceTxOptions_IsolationFloor(t *testing.T) {
	// A toggle committing mid-advance must not survive the wipe. Postgres
	// defaults to read committed, so the advance transaction has to request
	// serializable there; sqlite serializes transactions on its own.
	if got := advanceTxOptions(dialect.PG).Isolation; got != sql.LevelSerializable {
		t.Errorf("postgres isolation = %v, want %v", got, sql.LevelSerializable)
	}
	if got := advanceTxOptions(dialect.SQLite).Isolation; got != sql.LevelDefault {
		t.Errorf("sqlite isolation = %v, want %v", got, sql.LevelDefault)
	}

	store := NewExpeditionStore(testDB(t)).(*expeditionStore)
	if store.txOpts.Isolation != sql.LevelDefault {
		t.Errorf("sqlite store isolation = %v, want %v", store.txOpts.Isolation, sql.LevelDefault)
	}
}

func TestIsSerializationFailure(t *testing.T) {
	conflict := errors.New("ERROR: could not serialize access due to concurrent update (SQLSTATE 40001)")
	if !isSerializationFailure(conflict) {
		t.Error("serialization conflict not recognized")
	}
	if isSerializationFailure(errors.New("connection reset")) {
		t.Error("unrelated error treated as serialization failure")
	}
	if isSerializationFailure(nil) {
		t.Error("nil error treated as serialization failure")
	}
}

func TestWithinTx_RetriesSerializationConflicts(t *testing.T) {
	db := testDB(t)
	store := &expeditionStore{db: db, txOpts: &sql.TxOptions{}}

	conflict := errors.New("could not serialize access (SQLSTATE 40001)")
	calls := 0
	err := store.WithinTx(context.Background(), func(ctx context.Context, tx expedition.Store) error {
		calls++
		return conflict
	})
	if !errors.Is(err, conflict) {
		t.Fatalf("WithinTx() error = %v, want the conflict error", err)
	}
	if calls != advanceTxRetries {
		t.Errorf("WithinTx() attempts = %d, want %d", calls, advanceTxRetries)
	}

	// Other errors surface immediately.
	boom := errors.New("connection reset")
	calls = 0
	err = store.WithinTx(context.Background(), func(ctx context.Context, tx expedition.Store) error {
		calls++
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("WithinTx() error = %v, want the store error", err)
	}
	if calls != 1 {
		t.Errorf("WithinTx() attempts = %d, want 1", calls)
	}
}
