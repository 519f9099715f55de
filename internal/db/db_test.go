package db_test

import (
	"context"
	"database/sql"

	"graphtrace/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Item struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.PostgresDB
		ctx    context.Context
	)

	BeforeEach(func() {
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.PostgresDB{
			DB: gormDB,
		}
		ctx = context.Background()
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("Create", func() {
		BeforeEach(func() {
			mock.ExpectBegin()
			mock.ExpectQuery(`^INSERT INTO "items".*RETURNING "id"$`).
				WithArgs("alpha").
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
			mock.ExpectCommit()
		})

		It("should insert the record", func() {
			err := testDB.Create(ctx, &Item{Name: "alpha"})
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("CreateIgnoreConflicts", func() {
		BeforeEach(func() {
			mock.ExpectBegin()
			mock.ExpectQuery(`^INSERT INTO "items".*ON CONFLICT \("name"\) DO NOTHING RETURNING "id"$`).
				WithArgs("alpha", "beta").
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
			mock.ExpectCommit()
		})

		It("should report how many rows were actually inserted", func() {
			records := []Item{{Name: "alpha"}, {Name: "beta"}}
			inserted, err := testDB.CreateIgnoreConflicts(ctx, &records, "name")
			Expect(err).NotTo(HaveOccurred())
			Expect(inserted).To(Equal(int64(1)))
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("Upsert", func() {
		BeforeEach(func() {
			mock.ExpectBegin()
			mock.ExpectQuery(`^INSERT INTO "items".*ON CONFLICT \("id"\) DO UPDATE SET "name"=.*RETURNING "id"$`).
				WithArgs("alpha", 3).
				WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
			mock.ExpectCommit()
		})

		It("should update the listed columns on conflict", func() {
			err := testDB.Upsert(ctx, &Item{ID: 3, Name: "alpha"}, []string{"id"}, []string{"name"})
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("GetOneBy", func() {
		When("the record exists", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`^SELECT \* FROM "items" WHERE name = .*`).
					WithArgs("alpha", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "alpha"))
			})

			It("should load the record", func() {
				var item Item
				err := testDB.GetOneBy(ctx, "name", "alpha", &item)
				Expect(err).NotTo(HaveOccurred())
				Expect(item.ID).To(Equal(uint(1)))
			})
		})

		When("the record is missing", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`^SELECT \* FROM "items" WHERE name = .*`).
					WithArgs("ghost", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))
			})

			It("should return ErrNotFound", func() {
				var item Item
				err := testDB.GetOneBy(ctx, "name", "ghost", &item)
				Expect(err).To(MatchError(db.ErrNotFound))
			})
		})
	})

	Describe("GetAllBy", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`^SELECT \* FROM "items" WHERE name IN .*`).
				WithArgs("alpha", "beta").
				WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "alpha").AddRow(2, "beta"))
		})

		It("should load every matching record", func() {
			var items []Item
			err := testDB.GetAllBy(ctx, "name", []string{"alpha", "beta"}, &items)
			Expect(err).NotTo(HaveOccurred())
			Expect(items).To(HaveLen(2))
		})
	})

	Describe("Find", func() {
		When("pagination is requested", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`^SELECT \* FROM "items" WHERE "name" = .* ORDER BY id LIMIT .*`).
					WithArgs("alpha", 10, 5).
					WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "alpha"))
			})

			It("should apply the where, order and limit clauses", func() {
				var items []Item
				err := testDB.Find(ctx, &items, map[string]any{"name": "alpha"}, "id", 10, 5)
				Expect(err).NotTo(HaveOccurred())
				Expect(items).To(HaveLen(1))
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the limit is zero", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`^SELECT \* FROM "items"$`).
					WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))
			})

			It("should load everything unpaginated", func() {
				var items []Item
				err := testDB.Find(ctx, &items, nil, "", 0, 0)
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})
	})

	Describe("SearchLike", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`^SELECT \* FROM "items" WHERE \(name ILIKE .* OR id ILIKE .*\).*`).
				WithArgs("%alp%", "%alp%").
				WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "alpha"))
		})

		It("should match any of the columns case-insensitively", func() {
			var items []Item
			err := testDB.SearchLike(ctx, &items, []string{"name", "id"}, "alp", nil, 0, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(items).To(HaveLen(1))
		})

		When("no columns are given", func() {
			It("should return an error", func() {
				var items []Item
				err := testDB.SearchLike(ctx, &items, nil, "alp", nil, 0, 0)
				Expect(err).To(MatchError("at least one search column is required"))
			})
		})
	})

	Describe("IncrementColumn", func() {
		BeforeEach(func() {
			mock.ExpectBegin()
			mock.ExpectExec(`^UPDATE "items" SET "id"=id \+ .*`).
				WithArgs(1, "alpha").
				WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()
		})

		It("should add one to the column", func() {
			err := testDB.IncrementColumn(ctx, &Item{}, map[string]any{"name": "alpha"}, "id")
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("DeleteWhere", func() {
		BeforeEach(func() {
			mock.ExpectBegin()
			mock.ExpectExec(`^DELETE FROM "items" WHERE .*`).
				WithArgs("alpha").
				WillReturnResult(sqlmock.NewResult(0, 2))
			mock.ExpectCommit()
		})

		It("should delete every matching row", func() {
			err := testDB.DeleteWhere(ctx, &Item{}, map[string]any{"name": "alpha"})
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("CountWhere", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`^SELECT count\(\*\) FROM "items".*`).
				WithArgs("alpha").
				WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
		})

		It("should return the row count", func() {
			count, err := testDB.CountWhere(ctx, &Item{}, map[string]any{"name": "alpha"})
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(int64(5)))
		})
	})

	Describe("CountGroupBy", func() {
		BeforeEach(func() {
			mock.ExpectQuery(`^SELECT name AS value, count\(\*\) AS count FROM "items" GROUP BY .*`).
				WillReturnRows(sqlmock.NewRows([]string{"value", "count"}).
					AddRow("alpha", 3).
					AddRow("beta", 1))
		})

		It("should map each group to its count", func() {
			counts, err := testDB.CountGroupBy(ctx, &Item{}, "name")
			Expect(err).NotTo(HaveOccurred())
			Expect(counts).To(Equal(map[string]int64{"alpha": 3, "beta": 1}))
		})
	})
})
