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

func TestSplitAmount_FivePercent(t *testing.T) {
	commission, sellerAmount := splitAmount(decimal.NewFromInt(1000), 5.0)

	assert.True(t, commission.Equal(decimal.NewFromInt(50)), "commission = %s", commission)
	assert.True(t, sellerAmount.Equal(decimal.NewFromInt(950)), "seller amount = %s", sellerAmount)
}

func TestSplitAmount_PartsAlwaysSumToPrice(t *testing.T) {
	prices := []decimal.Decimal{
		decimal.NewFromInt(1),
		decimal.NewFromFloat(999.99),
		decimal.NewFromFloat(333.33),
		decimal.NewFromInt(12345),
	}

	for _, price := range prices {
		commission, sellerAmount := splitAmount(price, 5.0)
		assert.True(t, commission.Add(sellerAmount).Equal(price),
			"price %s split into %s + %s", price, commission, sellerAmount)
	}
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(100000), toMinorUnits(decimal.NewFromInt(1000)))
	assert.Equal(t, int64(99999), toMinorUnits(decimal.NewFromFloat(999.99)))
}

func confirmedBuyer(id uuid.UUID) *models.User {
	return &models.User{
		ID:             id,
		MSISDN:         "919876543210",
		Email:          "buyer@example.com",
		EmailConfirmed: true,
		IsActive:       true,
	}
}

func reservedTicket(sellerID, buyerID uuid.UUID) *models.Ticket {
	return &models.Ticket{
		ID:           uuid.New(),
		PNR:          "ABC123XYZ",
		SellingPrice: decimal.NewFromInt(1000),
		Status:       models.TicketStatusReserved,
		SellerID:     sellerID,
		ReservedBy:   &buyerID,
	}
}

func TestCreateOrder_MissingFieldsListedExactly(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMarketplaceRepo(ctrl)
	mockGW := mocks.NewMockMarketplaceGW(ctrl)
	uc := NewMarketplaceUC(mockRepo, mockGW, testConfig())

	amount := decimal.NewFromInt(1000)

	// Act: only amount present
	result, err := uc.CreateOrder(context.Background(), uuid.New().String(), &models.CreateOrderRequest{
		Amount: &amount,
	})

	// Assert
	assert.Nil(t, result)
	var missingErr *marketplace.MissingFieldsError
	assert.ErrorAs(t, err, &missingErr)
	assert.Equal(t, []string{"ticket_id", "seller_amount", "platform_commission"}, missingErr.Fields)
}

func TestVerifyPayment_MissingFieldsListedExactly(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMarketplaceRepo(ctrl)
	mockGW := mocks.NewMockMarketplaceGW(ctrl)
	uc := NewMarketplaceUC(mockRepo, mockGW, testConfig())

	// Act: empty body, nothing else should be touched
	result, err := uc.VerifyPayment(context.Background(), uuid.New().String(), &models.VerifyPaymentRequest{})

	// Assert
	assert.Nil(t, result)
	var missingErr *marketplace.MissingFieldsError
	assert.ErrorAs(t, err, &missingErr)
	assert.Equal(t, []string{"razorpay_payment_id", "razorpay_order_id", "razorpay_signature", "ticket_id"}, missingErr.Fields)
}

func TestCreateOrder_NonPositiveAmount(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMarketplaceRepo(ctrl)
	mockGW := mocks.NewMockMarketplaceGW(ctrl)
	uc := NewMarketplaceUC(mockRepo, mockGW, testConfig())

	buyerID := uuid.New()
	ticket := reservedTicket(uuid.New(), buyerID)

	mockRepo.EXPECT().GetUserByID(gomock.Any(), buyerID.String()).Return(confirmedBuyer(buyerID), nil)
	mockRepo.EXPECT().GetTicketByID(gomock.Any(), ticket.ID.String()).Return(ticket, nil)

	amount := decimal.Zero
	sellerAmount := decimal.Zero
	commission := decimal.Zero

	// Act
	result, err := uc.CreateOrder(context.Background(), buyerID.String(), &models.CreateOrderRequest{
		TicketID:           ticket.ID.String(),
		Amount:             &amount,
		SellerAmount:       &sellerAmount,
		PlatformCommission: &commission,
	})

	// Assert
	assert.ErrorIs(t, err, marketplace.ErrInvalidAmount)
	assert.Nil(t, result)
}

func TestCreateOrder_EmailNotConfirmed(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMarketplaceRepo(ctrl)
	mockGW := mocks.NewMockMarketplaceGW(ctrl)
	uc := NewMarketplaceUC(mockRepo, mockGW, testConfig())

	buyerID := uuid.New()
	buyer := confirmedBuyer(buyerID)
	buyer.EmailConfirmed = false

	mockRepo.EXPECT().GetUserByID(gomock.Any(), buyerID.String()).Return(buyer, nil)

	amount := decimal.NewFromInt(1000)
	sellerAmount := decimal.NewFromInt(950)
	commission := decimal.NewFromInt(50)

	// Act
	result, err := uc.CreateOrder(context.Background(), buyerID.String(), &models.CreateOrderRequest{
		TicketID:           uuid.New().String(),
		Amount:             &amount,
		SellerAmount:       &sellerAmount,
		PlatformCommission: &commission,
	})

	// Assert
	assert.ErrorIs(t, err, marketplace.ErrEmailNotConfirmed)
	assert.Nil(t, result)
}

func TestCreateOrder_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMarketplaceRepo(ctrl)
	mockGW := mocks.NewMockMarketplaceGW(ctrl)
	uc := NewMarketplaceUC(mockRepo, mockGW, testConfig())

	buyerID := uuid.New()
	ticket := reservedTicket(uuid.New(), buyerID)

	mockRepo.EXPECT().GetUserByID(gomock.Any(), buyerID.String()).Return(confirmedBuyer(buyerID), nil)
	mockRepo.EXPECT().GetTicketByID(gomock.Any(), ticket.ID.String()).Return(ticket, nil)
	// Amount is converted to minor units: 1000 rupees -> 100000 paise
	mockGW.EXPECT().CreateOrder(gomock.Any(), int64(100000), "INR", gomock.Any()).Return(&models.GatewayOrder{
		ID:       "order_abc",
		Amount:   100000,
		Currency: "INR",
		Receipt:  "rcpt_1",
		Status:   "created",
	}, nil)

	amount := decimal.NewFromInt(1000)
	sellerAmount := decimal.NewFromInt(950)
	commission := decimal.NewFromInt(50)

	// Act
	result, err := uc.CreateOrder(context.Background(), buyerID.String(), &models.CreateOrderRequest{
		TicketID:           ticket.ID.String(),
		Amount:             &amount,
		SellerAmount:       &sellerAmount,
		PlatformCommission: &commission,
	})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, "order_abc", result.OrderID)
	assert.Equal(t, int64(100000), result.Amount)
	assert.Equal(t, "rzp_test_key", result.RazorpayKeyID)
	assert.Equal(t, ticket.ID.String(), result.TicketID)
}

func TestVerifyPayment_InvalidSignature(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMarketplaceRepo(ctrl)
	mockGW := mocks.NewMockMarketplaceGW(ctrl)
	uc := NewMarketplaceUC(mockRepo, mockGW, testConfig())

	buyerID := uuid.New()

	mockRepo.EXPECT().GetUserByID(gomock.Any(), buyerID.String()).Return(confirmedBuyer(buyerID), nil)
	mockGW.EXPECT().VerifyPaymentSignature("order_abc", "pay_abc", "forged").Return(false)

	// Act
	result, err := uc.VerifyPayment(context.Background(), buyerID.String(), &models.VerifyPaymentRequest{
		RazorpayPaymentID: "pay_abc",
		RazorpayOrderID:   "order_abc",
		RazorpaySignature: "forged",
		TicketID:          uuid.New().String(),
	})

	// Assert
	assert.ErrorIs(t, err, marketplace.ErrInvalidSignature)
	assert.Nil(t, result)
}

func TestVerifyPayment_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMarketplaceRepo(ctrl)
	mockGW := mocks.NewMockMarketplaceGW(ctrl)
	uc := NewMarketplaceUC(mockRepo, mockGW, testConfig())

	buyerID := uuid.New()
	sellerID := uuid.New()
	ticket := reservedTicket(sellerID, buyerID)

	mockRepo.EXPECT().GetUserByID(gomock.Any(), buyerID.String()).Return(confirmedBuyer(buyerID), nil)
	mockGW.EXPECT().VerifyPaymentSignature("order_abc", "pay_abc", "sig").Return(true)
	mockRepo.EXPECT().GetTicketByID(gomock.Any(), ticket.ID.String()).Return(ticket, nil)
	mockRepo.EXPECT().CompletePurchase(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, txn *models.Transaction) (*models.PaymentResult, error) {
			// 5% commission split of the 1000 selling price
			assert.True(t, txn.PlatformCommission.Equal(decimal.NewFromInt(50)))
			assert.True(t, txn.SellerAmount.Equal(decimal.NewFromInt(950)))
			assert.Equal(t, models.TransactionCompleted, txn.Status)
			assert.Equal(t, "Jane Buyer", txn.BuyerName)

			sold := *ticket
			sold.Status = models.TicketStatusSold
			return &models.PaymentResult{Transaction: txn, Ticket: &sold}, nil
		})
	mockRepo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	mockGW.EXPECT().PublishPaymentCompleted(gomock.Any()).Return(nil)

	// Act
	result, err := uc.VerifyPayment(context.Background(), buyerID.String(), &models.VerifyPaymentRequest{
		RazorpayPaymentID: "pay_abc",
		RazorpayOrderID:   "order_abc",
		RazorpaySignature: "sig",
		TicketID:          ticket.ID.String(),
		BuyerName:         "Jane Buyer",
	})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, models.TicketStatusSold, result.Ticket.Status)
	// The passenger of record is untouched by the sale
	assert.Equal(t, ticket.PassengerName, result.Ticket.PassengerName)
}

func TestVerifyPayment_DuplicateVerificationConflicts(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMarketplaceRepo(ctrl)
	mockGW := mocks.NewMockMarketplaceGW(ctrl)
	uc := NewMarketplaceUC(mockRepo, mockGW, testConfig())

	buyerID := uuid.New()
	ticket := reservedTicket(uuid.New(), buyerID)

	mockRepo.EXPECT().GetUserByID(gomock.Any(), buyerID.String()).Return(confirmedBuyer(buyerID), nil)
	mockGW.EXPECT().VerifyPaymentSignature("order_abc", "pay_abc", "sig").Return(true)
	mockRepo.EXPECT().GetTicketByID(gomock.Any(), ticket.ID.String()).Return(ticket, nil)
	// The locked re-check inside the purchase transaction sees a sold ticket
	mockRepo.EXPECT().CompletePurchase(gomock.Any(), gomock.Any()).Return(nil, marketplace.ErrAlreadySold)

	// Act
	result, err := uc.VerifyPayment(context.Background(), buyerID.String(), &models.VerifyPaymentRequest{
		RazorpayPaymentID: "pay_abc",
		RazorpayOrderID:   "order_abc",
		RazorpaySignature: "sig",
		TicketID:          ticket.ID.String(),
	})

	// Assert
	assert.ErrorIs(t, err, marketplace.ErrAlreadySold)
	assert.Nil(t, result)
}
