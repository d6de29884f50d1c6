package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/quocbank/qbank_backend/internal/apperrors"
	"github.com/quocbank/qbank_backend/internal/core/domain"
	portssvc "github.com/quocbank/qbank_backend/internal/core/ports/services"
	"github.com/quocbank/qbank_backend/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ScheduledTransferServiceTestSuite struct {
	suite.Suite
	mockScheduled *MockScheduledTransferRepository
	mockAccounts  *MockAccountRepository
	mockUsers     *MockUserRepository
	mockNotifier  *MockNotifier
	service       portssvc.ScheduledTransferSvcFacade
}

func (suite *ScheduledTransferServiceTestSuite) SetupTest() {
	suite.mockScheduled = new(MockScheduledTransferRepository)
	suite.mockAccounts = new(MockAccountRepository)
	suite.mockUsers = new(MockUserRepository)
	suite.mockNotifier = new(MockNotifier)
	suite.service = services.NewScheduledTransferService(suite.mockScheduled, suite.mockAccounts, suite.mockUsers, suite.mockNotifier)
}

func (suite *ScheduledTransferServiceTestSuite) validCommand() domain.CreateScheduleCommand {
	return domain.CreateScheduleCommand{
		UserID:          uuid.NewString(),
		ToAccountNumber: "1234567890",
		Amount:          200_000,
		Frequency:       domain.Monthly,
		StartDate:       time.Now().UTC().AddDate(0, 0, 1),
	}
}

func (suite *ScheduledTransferServiceTestSuite) TestCreateSchedule_Success() {
	ctx := context.Background()
	cmd := suite.validCommand()
	from := &domain.Account{AccountID: uuid.NewString(), UserID: cmd.UserID}
	to := &domain.Account{AccountID: uuid.NewString(), UserID: uuid.NewString(), AccountNumber: cmd.ToAccountNumber}
	owner := &domain.User{UserID: to.UserID, FullName: "Trần Thị B"}

	suite.mockAccounts.On("FindActiveAccountByUserID", ctx, cmd.UserID).Return(from, nil).Once()
	suite.mockAccounts.On("FindActiveAccountByNumber", ctx, cmd.ToAccountNumber).Return(to, nil).Once()
	suite.mockUsers.On("FindUserByID", ctx, to.UserID).Return(owner, nil).Once()
	suite.mockScheduled.On("SaveScheduledTransfer", ctx, mock.MatchedBy(func(st domain.ScheduledTransfer) bool {
		return st.FromAccountID == from.AccountID &&
			st.ToAccountName == owner.FullName &&
			st.NextRunDate.Equal(cmd.StartDate) &&
			st.Status == domain.ScheduleActive
	})).Return(nil).Once()

	st, err := suite.service.CreateSchedule(ctx, cmd)

	suite.Require().NoError(err)
	suite.Require().NotNil(st)
	suite.Equal(owner.FullName, st.ToAccountName)
	suite.Equal(cmd.StartDate, st.NextRunDate)
	suite.mockScheduled.AssertExpectations(suite.T())
}

func (suite *ScheduledTransferServiceTestSuite) TestCreateSchedule_UnknownFrequency() {
	ctx := context.Background()
	cmd := suite.validCommand()
	cmd.Frequency = "YEARLY"

	st, err := suite.service.CreateSchedule(ctx, cmd)

	suite.Require().Error(err)
	suite.Nil(st)
	suite.ErrorIs(err, services.ErrUnknownFrequency)
}

func (suite *ScheduledTransferServiceTestSuite) TestCreateSchedule_StartDateInPast() {
	ctx := context.Background()
	cmd := suite.validCommand()
	cmd.StartDate = time.Now().UTC().AddDate(0, 0, -2)

	st, err := suite.service.CreateSchedule(ctx, cmd)

	suite.Require().Error(err)
	suite.Nil(st)
	suite.ErrorIs(err, services.ErrStartDateInPast)
}

func (suite *ScheduledTransferServiceTestSuite) TestCreateSchedule_EndBeforeStart() {
	ctx := context.Background()
	cmd := suite.validCommand()
	end := cmd.StartDate.AddDate(0, 0, -1)
	cmd.EndDate = &end

	st, err := suite.service.CreateSchedule(ctx, cmd)

	suite.Require().Error(err)
	suite.Nil(st)
	suite.ErrorIs(err, services.ErrEndBeforeStart)
}

func (suite *ScheduledTransferServiceTestSuite) TestCreateSchedule_SelfReference() {
	ctx := context.Background()
	cmd := suite.validCommand()
	account := &domain.Account{AccountID: uuid.NewString(), UserID: cmd.UserID, AccountNumber: cmd.ToAccountNumber}

	suite.mockAccounts.On("FindActiveAccountByUserID", ctx, cmd.UserID).Return(account, nil).Once()
	suite.mockAccounts.On("FindActiveAccountByNumber", ctx, cmd.ToAccountNumber).Return(account, nil).Once()

	st, err := suite.service.CreateSchedule(ctx, cmd)

	suite.Require().Error(err)
	suite.Nil(st)
	suite.ErrorIs(err, services.ErrScheduleSelfRef)
}

func (suite *ScheduledTransferServiceTestSuite) TestPauseSchedule_Forbidden() {
	ctx := context.Background()
	userID := uuid.NewString()
	st := &domain.ScheduledTransfer{ScheduleID: uuid.NewString(), FromAccountID: uuid.NewString()}
	other := &domain.Account{AccountID: st.FromAccountID, UserID: uuid.NewString()}

	suite.mockScheduled.On("FindScheduleByID", ctx, st.ScheduleID).Return(st, nil).Once()
	suite.mockAccounts.On("FindAccountByID", ctx, st.FromAccountID).Return(other, nil).Once()

	err := suite.service.PauseSchedule(ctx, userID, st.ScheduleID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockScheduled.AssertNotCalled(suite.T(), "UpdateScheduleStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ScheduledTransferServiceTestSuite) TestResumeSchedule_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	st := &domain.ScheduledTransfer{ScheduleID: uuid.NewString(), FromAccountID: uuid.NewString(), Status: domain.SchedulePaused}
	account := &domain.Account{AccountID: st.FromAccountID, UserID: userID}

	suite.mockScheduled.On("FindScheduleByID", ctx, st.ScheduleID).Return(st, nil).Once()
	suite.mockAccounts.On("FindAccountByID", ctx, st.FromAccountID).Return(account, nil).Once()
	suite.mockScheduled.On("UpdateScheduleStatus", ctx, st.ScheduleID, domain.SchedulePaused, domain.ScheduleActive, userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.ResumeSchedule(ctx, userID, st.ScheduleID)

	suite.Require().NoError(err)
	suite.mockScheduled.AssertExpectations(suite.T())
}

func (suite *ScheduledTransferServiceTestSuite) TestRunDueSchedules_FailureIsolation() {
	ctx := context.Background()
	now := time.Now().UTC()
	okEntry := domain.DueSchedule{
		ScheduledTransfer: domain.ScheduledTransfer{ScheduleID: uuid.NewString(), Amount: 100_000, ToAccountName: "A"},
		OwnerUserID:       uuid.NewString(),
	}
	badEntry := domain.DueSchedule{
		ScheduledTransfer: domain.ScheduledTransfer{ScheduleID: uuid.NewString(), Amount: 999_999, ToAccountName: "B"},
		OwnerUserID:       uuid.NewString(),
	}
	outcome := &domain.ScheduledRunOutcome{
		Schedule:    domain.ScheduledTransfer{ScheduleID: okEntry.ScheduleID, Status: domain.ScheduleActive},
		OwnerUserID: okEntry.OwnerUserID,
	}

	suite.mockScheduled.On("ListDueSchedules", ctx, now).Return([]domain.DueSchedule{badEntry, okEntry}, nil).Once()
	suite.mockScheduled.On("ExecuteDueTransfer", ctx, badEntry.ScheduleID, now).Return(nil, apperrors.ErrInsufficientFunds).Once()
	suite.mockScheduled.On("ExecuteDueTransfer", ctx, okEntry.ScheduleID, now).Return(outcome, nil).Once()
	suite.mockNotifier.On("Dispatch", ctx, badEntry.OwnerUserID, domain.NotifyTransaction, "Chuyển tiền định kỳ thất bại", mock.AnythingOfType("string")).Once()
	suite.mockNotifier.On("Dispatch", ctx, okEntry.OwnerUserID, domain.NotifyTransaction, "Chuyển tiền định kỳ thành công", mock.AnythingOfType("string")).Once()

	executed, failed, err := suite.service.RunDueSchedules(ctx, now)

	suite.Require().NoError(err)
	suite.Equal(1, executed)
	suite.Equal(1, failed)
	suite.mockScheduled.AssertExpectations(suite.T())
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *ScheduledTransferServiceTestSuite) TestRunDueSchedules_ClaimMissSkipped() {
	ctx := context.Background()
	now := time.Now().UTC()
	entry := domain.DueSchedule{
		ScheduledTransfer: domain.ScheduledTransfer{ScheduleID: uuid.NewString(), Amount: 100_000},
		OwnerUserID:       uuid.NewString(),
	}

	suite.mockScheduled.On("ListDueSchedules", ctx, now).Return([]domain.DueSchedule{entry}, nil).Once()
	suite.mockScheduled.On("ExecuteDueTransfer", ctx, entry.ScheduleID, now).Return(nil, apperrors.ErrConflict).Once()

	executed, failed, err := suite.service.RunDueSchedules(ctx, now)

	suite.Require().NoError(err)
	suite.Equal(0, executed)
	suite.Equal(0, failed)
	suite.mockNotifier.AssertNotCalled(suite.T(), "Dispatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ScheduledTransferServiceTestSuite) TestRunDueSchedules_Empty() {
	ctx := context.Background()
	now := time.Now().UTC()

	suite.mockScheduled.On("ListDueSchedules", ctx, now).Return([]domain.DueSchedule{}, nil).Once()

	executed, failed, err := suite.service.RunDueSchedules(ctx, now)

	suite.Require().NoError(err)
	suite.Equal(0, executed)
	suite.Equal(0, failed)
}

func TestScheduledTransferServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduledTransferServiceTestSuite))
}
