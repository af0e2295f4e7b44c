package models

import "errors"

type DocumentKind string

const (
	DocumentKindBill DocumentKind = "bill"
	DocumentKindMemo DocumentKind = "memo"
)

type DocumentStatus string

const (
	DocumentStatusPending DocumentStatus = "pending"
	DocumentStatusSettled DocumentStatus = "settled"
)

type TransactionType string

const (
	TransactionTypeCredit TransactionType = "credit"
	TransactionTypeDebit  TransactionType = "debit"
)

type TransactionCategory string

const (
	TransactionCategoryBill     TransactionCategory = "bill"
	TransactionCategoryMemo     TransactionCategory = "memo"
	TransactionCategoryAdvance  TransactionCategory = "advance"
	TransactionCategoryExpense  TransactionCategory = "expense"
	TransactionCategoryTransfer TransactionCategory = "transfer"
	TransactionCategoryOther    TransactionCategory = "other"
)

type AccountType string

const (
	AccountTypeParty    AccountType = "party"
	AccountTypeSupplier AccountType = "supplier"
)

func (t *TransactionCategory) UnmarshalText(b []byte) error {
	categories := map[string]TransactionCategory{
		"bill":     TransactionCategoryBill,
		"memo":     TransactionCategoryMemo,
		"advance":  TransactionCategoryAdvance,
		"expense":  TransactionCategoryExpense,
		"transfer": TransactionCategoryTransfer,
		"other":    TransactionCategoryOther,
	}
	v, ok := categories[string(b)]
	if !ok {
		return errors.New("invalid transaction category")
	}
	*t = v
	return nil
}

func (t *TransactionType) UnmarshalText(b []byte) error {
	switch string(b) {
	case "credit":
		*t = TransactionTypeCredit
	case "debit":
		*t = TransactionTypeDebit
	default:
		return errors.New("transaction type must be credit or debit")
	}
	return nil
}

func (t *DocumentStatus) UnmarshalText(b []byte) error {
	switch string(b) {
	case "pending":
		*t = DocumentStatusPending
	case "settled":
		*t = DocumentStatusSettled
	default:
		return errors.New("document status must be pending or settled")
	}
	return nil
}

func (t *AccountType) UnmarshalText(b []byte) error {
	switch string(b) {
	case "party":
		*t = AccountTypeParty
	case "supplier":
		*t = AccountTypeSupplier
	default:
		return errors.New("account type must be party or supplier")
	}
	return nil
}

// DocumentKindForCategory maps a banking transaction category to the document
// kind it settles. Advance entries can target either kind, so they resolve
// across both collections.
func DocumentKindForCategory(c TransactionCategory) (DocumentKind, bool) {
	switch c {
	case TransactionCategoryBill:
		return DocumentKindBill, true
	case TransactionCategoryMemo:
		return DocumentKindMemo, true
	default:
		return "", false
	}
}
