package exporter

import (
	"github.com/grachmannico95/accounting-sync/internal/domain"
)

// MapTransaction converts a transaction into the provider-agnostic export shape. Only
// eligible attachments are carried and the reference falls back to the transaction id.
func MapTransaction(tx domain.Transaction) domain.MappedTransaction {
	tax := ResolveTax(TaxInput{
		Amount:          tx.Amount,
		TaxAmount:       tx.TaxAmount,
		TaxRate:         tx.TaxRate,
		TaxType:         tx.TaxType,
		CategoryTaxRate: tx.CategoryTaxRate,
		CategoryTaxType: tx.CategoryTaxType,
	})

	reference := tx.Reference
	if reference == "" {
		reference = tx.ID
	}

	description := tx.Description
	if description == "" {
		description = tx.Name
	}

	mapped := domain.MappedTransaction{
		ID:               tx.ID,
		Date:             tx.Date,
		Amount:           tx.Amount,
		Currency:         tx.Currency,
		Description:      description,
		Reference:        reference,
		CounterpartyName: tx.CounterpartyName,
		Category:         tx.CategorySlug,
		TaxAmount:        tax.Amount,
		TaxRate:          tax.Rate,
		TaxType:          tax.Type,
		Note:             tx.Note,
		Attachments:      []domain.MappedAttachment{},
	}

	for _, a := range tx.EligibleAttachments() {
		mapped.Attachments = append(mapped.Attachments, domain.MappedAttachment{
			ID:       a.ID,
			Name:     a.Name,
			Path:     a.Path,
			MimeType: a.MimeType,
			Size:     a.Size,
		})
	}

	return mapped
}
