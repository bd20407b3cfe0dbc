package service

import (
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"courtku_backend/internals/configs"
	invoiceModel "courtku_backend/internals/features/billing/invoices/model"
	paymentModel "courtku_backend/internals/features/payments/payments/model"
)

// verifySignature checks the Midtrans signature_key:
// sha512(order_id + status_code + gross_amount + server_key).
func verifySignature(body map[string]interface{}) bool {
	signature, _ := body["signature_key"].(string)
	orderID, _ := body["order_id"].(string)
	statusCode, _ := body["status_code"].(string)
	grossAmount, _ := body["gross_amount"].(string)
	if signature == "" {
		return false
	}

	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + configs.MidtransServerKey))
	return hex.EncodeToString(sum[:]) == signature
}

// HandlePaymentStatusWebhook processes a Midtrans notification. Settlement
// marks both the payment and its invoice paid in one transaction; the
// terminal statuses only touch the payment.
func HandlePaymentStatusWebhook(db *gorm.DB, body map[string]interface{}, rawBody []byte) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)
	if !ok1 || !ok2 {
		log.Println("[WEBHOOK ERROR] Incomplete notification payload:", body)
		return fmt.Errorf("invalid payload")
	}
	if !verifySignature(body) {
		log.Println("[WEBHOOK ERROR] Signature mismatch for order:", orderID)
		return fmt.Errorf("invalid signature")
	}

	var payment paymentModel.PaymentModel
	if err := db.Where("payment_order_id = ?", orderID).First(&payment).Error; err != nil {
		log.Println("[WEBHOOK ERROR] Payment not found:", err)
		return fmt.Errorf("payment with order_id %s not found", orderID)
	}

	payment.PaymentRawPayload = rawBody
	if method, ok := body["payment_type"].(string); ok && method != "" {
		payment.PaymentMethod = &method
	}

	switch status {
	case "capture", "settlement":
		now := time.Now()
		payment.PaymentStatus = paymentModel.PaymentStatusPaid
		payment.PaymentPaidAt = &now
	case "expire":
		payment.PaymentStatus = paymentModel.PaymentStatusExpired
	case "cancel":
		payment.PaymentStatus = paymentModel.PaymentStatusCancelled
	case "deny":
		payment.PaymentStatus = paymentModel.PaymentStatusDenied
	default:
		// pending and friends; keep the payload, change nothing else.
		log.Println("[WEBHOOK INFO] Status not processed:", status)
		return db.Save(&payment).Error
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&payment).Error; err != nil {
			log.Println("[WEBHOOK ERROR] Failed to save payment:", err)
			return err
		}

		if payment.PaymentStatus == paymentModel.PaymentStatusPaid {
			if err := tx.Model(&invoiceModel.InvoiceModel{}).
				Where("invoice_id = ?", payment.PaymentInvoiceID).
				Update("invoice_status", invoiceModel.InvoiceStatusPaid).Error; err != nil {
				log.Println("[WEBHOOK ERROR] Failed to mark invoice paid:", err)
				return err
			}
		}
		return nil
	})
}
