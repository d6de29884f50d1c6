package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/quocbank/qbank_backend/internal/apperrors"
	"github.com/quocbank/qbank_backend/internal/core/domain"
	portssvc "github.com/quocbank/qbank_backend/internal/core/ports/services"
	"github.com/quocbank/qbank_backend/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type NotificationServiceTestSuite struct {
	suite.Suite
	mockRepo *MockNotificationRepository
	service  portssvc.NotificationSvcFacade
}

func (suite *NotificationServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockNotificationRepository)
	suite.service = services.NewNotificationService(suite.mockRepo)
}

func (suite *NotificationServiceTestSuite) TestDispatch_Saves() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("SaveNotification", ctx, mock.MatchedBy(func(n domain.Notification) bool {
		return n.UserID == userID &&
			n.Type == domain.NotifyTransaction &&
			n.Title == "Chuyển tiền thành công" &&
			!n.IsRead
	})).Return(nil).Once()

	suite.service.Dispatch(ctx, userID, domain.NotifyTransaction, "Chuyển tiền thành công", "Bạn đã chuyển 100.000đ")

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestDispatch_SwallowsSaveError() {
	ctx := context.Background()

	suite.mockRepo.On("SaveNotification", ctx, mock.AnythingOfType("domain.Notification")).Return(assert.AnError).Once()

	// Must not panic or surface the error.
	suite.service.Dispatch(ctx, uuid.NewString(), domain.NotifySystem, "t", "m")

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestMarkRead_Owned() {
	ctx := context.Background()
	userID := uuid.NewString()
	n := &domain.Notification{NotificationID: uuid.NewString(), UserID: userID}

	suite.mockRepo.On("FindNotificationByID", ctx, n.NotificationID).Return(n, nil).Once()
	suite.mockRepo.On("MarkNotificationRead", ctx, n.NotificationID).Return(nil).Once()

	err := suite.service.MarkRead(ctx, userID, n.NotificationID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *NotificationServiceTestSuite) TestMarkRead_Forbidden() {
	ctx := context.Background()
	n := &domain.Notification{NotificationID: uuid.NewString(), UserID: uuid.NewString()}

	suite.mockRepo.On("FindNotificationByID", ctx, n.NotificationID).Return(n, nil).Once()

	err := suite.service.MarkRead(ctx, uuid.NewString(), n.NotificationID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "MarkNotificationRead", mock.Anything, mock.Anything)
}

func (suite *NotificationServiceTestSuite) TestDelete_Forbidden() {
	ctx := context.Background()
	n := &domain.Notification{NotificationID: uuid.NewString(), UserID: uuid.NewString()}

	suite.mockRepo.On("FindNotificationByID", ctx, n.NotificationID).Return(n, nil).Once()

	err := suite.service.Delete(ctx, uuid.NewString(), n.NotificationID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "DeleteNotification", mock.Anything, mock.Anything)
}

func (suite *NotificationServiceTestSuite) TestCountUnread() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("CountUnreadByUserID", ctx, userID).Return(3, nil).Once()

	count, err := suite.service.CountUnread(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(3, count)
}

func TestNotificationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationServiceTestSuite))
}
