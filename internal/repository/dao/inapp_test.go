package dao

import (
	"context"
	"errors"
	"testing"

	"gitee.com/flycash/osh-notification/internal/errs"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestInAppNotificationDAOSuite(t *testing.T) {
	suite.Run(t, new(InAppNotificationDAOTestSuite))
}

type InAppNotificationDAOTestSuite struct {
	suite.Suite
	mock sqlmock.Sqlmock
	dao  InAppNotificationDAO
}

func (s *InAppNotificationDAOTestSuite) SetupTest() {
	sqlDB, mock, err := sqlmock.New()
	s.Require().NoError(err)

	db, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	s.Require().NoError(err)

	s.mock = mock
	s.dao = NewInAppNotificationDAO(db)
}

func (s *InAppNotificationDAOTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func (s *InAppNotificationDAOTestSuite) TestCreate() {
	t := s.T()

	s.mock.ExpectExec("INSERT INTO `in_app_notifications`").
		WillReturnResult(sqlmock.NewResult(1, 1))

	got, err := s.dao.Create(context.Background(), InAppNotification{
		ID:          1,
		RecipientID: 10,
		Title:       "Rendez-vous annulé",
		Message:     "msg",
		Type:        "APPOINTMENT",
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), got.ID)
	assert.NotZero(t, got.Ctime)
	assert.Equal(t, got.Ctime, got.Utime)
}

func (s *InAppNotificationDAOTestSuite) TestCreateDuplicate() {
	t := s.T()

	s.mock.ExpectExec("INSERT INTO `in_app_notifications`").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	_, err := s.dao.Create(context.Background(), InAppNotification{ID: 1, RecipientID: 10})
	assert.ErrorIs(t, err, errs.ErrNotificationDuplicate)
}

func (s *InAppNotificationDAOTestSuite) TestCreateOtherError() {
	t := s.T()

	dbErr := errors.New("connection refused")
	s.mock.ExpectExec("INSERT INTO `in_app_notifications`").WillReturnError(dbErr)

	_, err := s.dao.Create(context.Background(), InAppNotification{ID: 1, RecipientID: 10})
	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, errs.ErrNotificationDuplicate)
}

func (s *InAppNotificationDAOTestSuite) TestListByRecipient() {
	t := s.T()

	rows := sqlmock.NewRows([]string{"id", "recipient_id", "title", "message", "type", "action_url", "appointment_id", "is_read", "ctime", "utime"}).
		AddRow(2, 10, "t2", "m2", "APPOINTMENT", "http://x/2", 7, false, 2, 2).
		AddRow(1, 10, "t1", "m1", "INFO", "", 0, true, 1, 1)
	s.mock.ExpectQuery("SELECT \\* FROM `in_app_notifications` WHERE recipient_id = \\? ORDER BY id DESC").
		WillReturnRows(rows)

	got, err := s.dao.ListByRecipient(context.Background(), 10, 0, 20)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint64(2), got[0].ID)
	assert.Equal(t, "http://x/2", got[0].ActionURL)
	assert.True(t, got[1].Read)
}

func (s *InAppNotificationDAOTestSuite) TestMarkRead() {
	t := s.T()

	s.mock.ExpectExec("UPDATE `in_app_notifications` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, s.dao.MarkRead(context.Background(), 1, 10))

	s.mock.ExpectExec("UPDATE `in_app_notifications` SET").
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, s.dao.MarkRead(context.Background(), 1, 11), errs.ErrNotificationNotFound)
}
