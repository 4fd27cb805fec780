package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"pacifictrucking/config"
	"pacifictrucking/repository"
	"pacifictrucking/utils"
)

type PDFHandler struct {
	Repo     *repository.PDFRepository
	SavePath string
}

// InvoicePDF generates the invoice PDF, uploads it to R2, and records the
// URL on the invoice. When the upload fails the PDF is kept on local disk
// so the document is never lost.
func (h *PDFHandler) InvoicePDF(w http.ResponseWriter, r *http.Request) {
	invoiceID := r.URL.Query().Get("id")
	if invoiceID == "" {
		writeError(w, http.StatusBadRequest, "missing invoice id")
		return
	}

	pdfBytes, err := utils.GenerateInvoicePDF(h.Repo, invoiceID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate PDF: "+err.Error())
		return
	}
	if len(pdfBytes) == 0 {
		writeError(w, http.StatusNotFound, "Invoice not found")
		return
	}

	filename := fmt.Sprintf("invoice_%s_%d.pdf", invoiceID, time.Now().Unix())

	fileURL, uploadErr := utils.UploadInvoicePDF(pdfBytes, filename)
	if uploadErr != nil {
		config.LogError(config.GetLogger(), "handlers", "InvoicePDF", "upload to R2", invoiceID, uploadErr)

		// Fall back to local disk
		saveDir := h.SavePath
		if saveDir == "" {
			saveDir = "./pdfs"
		}
		if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to create save directory: "+err.Error())
			return
		}
		savePath := filepath.Join(saveDir, filename)
		if err := os.WriteFile(savePath, pdfBytes, 0644); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to save PDF: "+err.Error())
			return
		}
		fileURL = savePath
	}

	if err := h.Repo.InvoiceRepo.UpdatePDF(invoiceID, fileURL, time.Now().UTC()); err != nil {
		// Log but don't block the response
		config.LogError(config.GetLogger(), "handlers", "InvoicePDF", "update invoice pdf fields", invoiceID, err)
	}

	writeJSON(w, http.StatusOK, ApiResponse{
		Success: true,
		Message: "Invoice PDF generated",
		Data:    map[string]string{"file": fileURL},
	})
}
