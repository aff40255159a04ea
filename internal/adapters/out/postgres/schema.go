package postgres

import (
	"context"
	"fmt"

	"cargo/internal/adapters/out/postgres/discountrepo"
	"cargo/internal/adapters/out/postgres/extraditionrepo"
	"cargo/internal/adapters/out/postgres/notificationrepo"
	"cargo/internal/adapters/out/postgres/receiptrepo"
	"cargo/internal/adapters/out/postgres/trackcoderepo"
	"cargo/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// OnDelete actions used by CascadePolicies.
const (
	Cascade = "CASCADE"
	SetNull = "SET NULL"
)

// CascadePolicy declares one foreign key and what happens to the referencing
// rows when the referenced row is deleted.
type CascadePolicy struct {
	Table     string
	Column    string
	RefTable  string
	RefColumn string
	OnDelete  string
}

// ConstraintName is the deterministic name the migrator uses, so repeated
// migrations find the constraint instead of adding a second one.
func (p CascadePolicy) ConstraintName() string {
	return fmt.Sprintf("fk_%s_%s", p.Table, p.Column)
}

func (p CascadePolicy) ddl() string {
	return fmt.Sprintf(
		"ALTER TABLE %s ADD CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s (%s) ON DELETE %s",
		p.Table, p.ConstraintName(), p.Column, p.RefTable, p.RefColumn, p.OnDelete,
	)
}

// CascadePolicies is the single place where referential actions are
// declared. Deleting a customer removes everything they own; removing a
// receipt, extradition or operator only detaches the rows pointing at it.
var CascadePolicies = []CascadePolicy{
	{Table: "track_codes", Column: "owner_id", RefTable: "users", RefColumn: "id", OnDelete: Cascade},
	{Table: "receipts", Column: "owner_id", RefTable: "users", RefColumn: "id", OnDelete: Cascade},
	{Table: "receipt_items", Column: "receipt_id", RefTable: "receipts", RefColumn: "id", OnDelete: Cascade},
	{Table: "receipt_items", Column: "track_code_id", RefTable: "track_codes", RefColumn: "id", OnDelete: Cascade},
	{Table: "customer_discounts", Column: "user_id", RefTable: "users", RefColumn: "id", OnDelete: Cascade},
	{Table: "notifications", Column: "user_id", RefTable: "users", RefColumn: "id", OnDelete: Cascade},
	{Table: "extraditions", Column: "user_id", RefTable: "users", RefColumn: "id", OnDelete: Cascade},
	{Table: "extraditions", Column: "receipt_id", RefTable: "receipts", RefColumn: "id", OnDelete: SetNull},
	{Table: "extraditions", Column: "issued_by", RefTable: "users", RefColumn: "id", OnDelete: SetNull},
	{Table: "extradition_packages", Column: "user_id", RefTable: "users", RefColumn: "id", OnDelete: Cascade},
	{Table: "extradition_packages", Column: "extradition_id", RefTable: "extraditions", RefColumn: "id", OnDelete: SetNull},
	{Table: "extradition_package_track_codes", Column: "package_id", RefTable: "extradition_packages", RefColumn: "id", OnDelete: Cascade},
	{Table: "extradition_package_track_codes", Column: "track_code_id", RefTable: "track_codes", RefColumn: "id", OnDelete: Cascade},
}

// Tables lists every table created by Migrate, referenced tables first.
var Tables = []string{
	"users",
	"track_codes",
	"receipts",
	"receipt_items",
	"customer_discounts",
	"notifications",
	"extraditions",
	"extradition_packages",
	"extradition_package_track_codes",
}

// Migrate creates or updates the schema. It is idempotent.
func Migrate(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)

	err := db.AutoMigrate(
		&userrepo.UserDTO{},
		&trackcoderepo.TrackCodeDTO{},
		&receiptrepo.ReceiptDTO{},
		&receiptrepo.ReceiptItemDTO{},
		&discountrepo.CustomerDiscountDTO{},
		&notificationrepo.NotificationDTO{},
		&extraditionrepo.ExtraditionDTO{},
		&extraditionrepo.PackageDTO{},
		&extraditionrepo.PackageTrackCodeDTO{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if err := db.Exec("CREATE SEQUENCE IF NOT EXISTS " + extraditionrepo.PackageBarcodeSequence).Error; err != nil {
		return fmt.Errorf("create barcode sequence: %w", err)
	}

	for _, policy := range CascadePolicies {
		if err := applyPolicy(db, policy); err != nil {
			return err
		}
	}
	return nil
}

func applyPolicy(db *gorm.DB, policy CascadePolicy) error {
	var exists bool
	err := db.Raw("SELECT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = ?)", policy.ConstraintName()).
		Scan(&exists).Error
	if err != nil {
		return fmt.Errorf("inspect %s: %w", policy.ConstraintName(), err)
	}
	if exists {
		return nil
	}

	if err := db.Exec(policy.ddl()).Error; err != nil {
		return fmt.Errorf("add %s: %w", policy.ConstraintName(), err)
	}
	return nil
}
