package infra

// pdf.go — Quotation PDF generation using go-pdf/fpdf.
// Generates an A4 document with:
//   - Store name header
//   - Orçamento number and creation date
//   - Customer and motorcycle details
//   - Item table (code, product name, quantity, unit price, subtotal)
//   - Bold total
//
// The output file is saved to storagePath/orcamento_{id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"pecaspos/internal/model"

	"github.com/go-pdf/fpdf"
)

// GerarOrcamentoPDF generates a printable quotation document.
// storagePath is the directory where the PDF will be written (created if needed).
// Returns the absolute path to the generated file.
func GerarOrcamentoPDF(orc *model.Orcamento, nomeLoja, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("orcamento_%d.pdf", orc.ID)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30 // total margins = 30mm

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, nomeLoja, "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Orçamento", "", 1, "C", false, 0, "")
	pdf.Ln(3)

	// ── Orçamento info ───────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Orçamento N° %d", orc.ID), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, "Data: "+orc.DataCriacao, "", 1, "L", false, 0, "")
	if orc.ClienteNome != "" {
		pdf.CellFormat(contentW, 5, "Cliente: "+orc.ClienteNome, "", 1, "L", false, 0, "")
	}
	if orc.ClienteTelefone != "" {
		pdf.CellFormat(contentW, 5, "Telefone: "+orc.ClienteTelefone, "", 1, "L", false, 0, "")
	}
	if orc.MotoModelo != "" {
		moto := orc.MotoModelo
		if orc.MotoAno != "" {
			moto += " " + orc.MotoAno
		}
		pdf.CellFormat(contentW, 5, "Moto: "+moto, "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	// ── Separator ────────────────────────────────────────────────────────────
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(3)

	// ── Items header ─────────────────────────────────────────────────────────
	col1 := contentW * 0.12 // código
	col2 := contentW * 0.40 // product name
	col3 := contentW * 0.12 // qty
	col4 := contentW * 0.18 // unit price
	col5 := contentW * 0.18 // subtotal

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "Cód.", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Produto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "Qtd", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col4, 6, "Preço Unit.", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col5, 6, "Subtotal", "B", 1, "R", false, 0, "")

	// ── Item rows ────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	for _, item := range orc.Itens {
		nome := item.Nome
		if len(nome) > 42 {
			nome = nome[:41] + "…"
		}
		pdf.CellFormat(col1, 6, fmt.Sprintf("%d", item.ProdutoCodigo), "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, nome, "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 6, fmt.Sprintf("x%d", item.Quantidade), "", 0, "C", false, 0, "")
		pdf.CellFormat(col4, 6, "R$ "+item.PrecoUnitario.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col5, 6, "R$ "+item.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	// ── Total ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(col1+col2+col3+col4, 8, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col5, 8, "R$ "+orc.Total.StringFixed(2), "", 1, "R", false, 0, "")

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.Ln(5)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.CellFormat(contentW, 5, "Orçamento válido por 7 dias. Preços sujeitos a alteração.", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
