package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/ticketswapper/ticketswapper/internal/pkg/models"
	"github.com/ticketswapper/ticketswapper/services/marketplace"
	"github.com/ticketswapper/ticketswapper/services/marketplace/mocks"
)

func TestProcessWebhook_InvalidSignature(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMarketplaceRepo(ctrl)
	mockGW := mocks.NewMockMarketplaceGW(ctrl)
	uc := NewMarketplaceUC(mockRepo, mockGW, testConfig())

	body := []byte(`{"event":"payment.captured"}`)
	mockGW.EXPECT().VerifyWebhookSignature(body, "forged").Return(false)

	// Act
	err := uc.ProcessWebhook(context.Background(), "evt_1", "forged", body)

	// Assert
	assert.ErrorIs(t, err, marketplace.ErrInvalidSignature)
}

func TestProcessWebhook_DuplicateDeliveryAcknowledged(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMarketplaceRepo(ctrl)
	mockGW := mocks.NewMockMarketplaceGW(ctrl)
	uc := NewMarketplaceUC(mockRepo, mockGW, testConfig())

	body := []byte(`{"event":"payment.captured"}`)
	mockGW.EXPECT().VerifyWebhookSignature(body, "sig").Return(true)
	mockRepo.EXPECT().InsertWebhookEvent(gomock.Any(), gomock.Any()).Return(marketplace.ErrDuplicateWebhook)

	// Act: a re-delivery is acknowledged without reprocessing
	err := uc.ProcessWebhook(context.Background(), "evt_1", "sig", body)

	// Assert
	assert.NoError(t, err)
}

func TestProcessWebhook_PaymentFailedReleasesTicket(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMarketplaceRepo(ctrl)
	mockGW := mocks.NewMockMarketplaceGW(ctrl)
	uc := NewMarketplaceUC(mockRepo, mockGW, testConfig())

	txn := &models.Transaction{
		ID:       uuid.New(),
		TicketID: uuid.New(),
		BuyerID:  uuid.New(),
		SellerID: uuid.New(),
		Amount:   decimal.NewFromInt(1000),
		Status:   models.TransactionCompleted,
	}

	body := []byte(`{
		"event": "payment.failed",
		"payload": {"payment": {"entity": {"id": "pay_abc", "order_id": "order_abc", "status": "failed", "error_reason": "card_declined"}}}
	}`)

	mockGW.EXPECT().VerifyWebhookSignature(body, "sig").Return(true)
	mockRepo.EXPECT().InsertWebhookEvent(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().GetTransactionByOrderID(gomock.Any(), "order_abc").Return(txn, nil)
	mockRepo.EXPECT().UpdateTransactionStatus(gomock.Any(), txn.ID.String(), models.TransactionFailed).Return(nil)
	mockRepo.EXPECT().ReleaseTicket(gomock.Any(), txn.TicketID.String()).Return(nil)
	mockRepo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishPaymentFailed(gomock.Any()).Return(nil)
	mockRepo.EXPECT().MarkWebhookProcessed(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	err := uc.ProcessWebhook(context.Background(), "evt_2", "sig", body)

	// Assert
	assert.NoError(t, err)
}

func TestProcessWebhook_RefundCancelsPayout(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMarketplaceRepo(ctrl)
	mockGW := mocks.NewMockMarketplaceGW(ctrl)
	uc := NewMarketplaceUC(mockRepo, mockGW, testConfig())

	txn := &models.Transaction{
		ID:       uuid.New(),
		TicketID: uuid.New(),
		BuyerID:  uuid.New(),
		SellerID: uuid.New(),
		Amount:   decimal.NewFromInt(1000),
		Currency: "INR",
		Status:   models.TransactionCompleted,
	}

	body := []byte(`{
		"event": "refund.processed",
		"payload": {"refund": {"entity": {"id": "rfnd_abc", "payment_id": "pay_abc", "status": "processed"}}}
	}`)

	mockGW.EXPECT().VerifyWebhookSignature(body, "sig").Return(true)
	mockRepo.EXPECT().InsertWebhookEvent(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().GetTransactionByPaymentID(gomock.Any(), "pay_abc").Return(txn, nil)
	mockRepo.EXPECT().UpdateTransactionStatus(gomock.Any(), txn.ID.String(), models.TransactionRefunded).Return(nil)
	mockRepo.EXPECT().MarkTicketRefunded(gomock.Any(), txn.TicketID.String()).Return(nil)
	mockRepo.EXPECT().CancelPayoutByTransactionID(gomock.Any(), txn.ID.String()).Return(nil)
	mockRepo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	mockGW.EXPECT().PublishPaymentRefunded(gomock.Any()).Return(nil)
	mockRepo.EXPECT().MarkWebhookProcessed(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	err := uc.ProcessWebhook(context.Background(), "evt_3", "sig", body)

	// Assert
	assert.NoError(t, err)
}

func TestProcessWebhook_UnknownOrderAcknowledged(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMarketplaceRepo(ctrl)
	mockGW := mocks.NewMockMarketplaceGW(ctrl)
	uc := NewMarketplaceUC(mockRepo, mockGW, testConfig())

	body := []byte(`{
		"event": "payment.failed",
		"payload": {"payment": {"entity": {"id": "pay_abc", "order_id": "order_missing", "status": "failed"}}}
	}`)

	mockGW.EXPECT().VerifyWebhookSignature(body, "sig").Return(true)
	mockRepo.EXPECT().InsertWebhookEvent(gomock.Any(), gomock.Any()).Return(nil)
	// An order we never created is acknowledged so the gateway stops retrying
	mockRepo.EXPECT().GetTransactionByOrderID(gomock.Any(), "order_missing").Return(nil, marketplace.ErrTransactionNotFound)
	mockRepo.EXPECT().MarkWebhookProcessed(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	err := uc.ProcessWebhook(context.Background(), "evt_5", "sig", body)

	// Assert
	assert.NoError(t, err)
}

func TestProcessWebhook_UnknownEventIgnored(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMarketplaceRepo(ctrl)
	mockGW := mocks.NewMockMarketplaceGW(ctrl)
	uc := NewMarketplaceUC(mockRepo, mockGW, testConfig())

	body := []byte(`{"event":"order.paid"}`)
	mockGW.EXPECT().VerifyWebhookSignature(body, "sig").Return(true)
	mockRepo.EXPECT().InsertWebhookEvent(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().MarkWebhookProcessed(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	err := uc.ProcessWebhook(context.Background(), "evt_4", "sig", body)

	// Assert
	assert.NoError(t, err)
}
