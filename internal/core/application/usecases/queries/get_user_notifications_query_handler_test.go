package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/anj1741/Routegenius-final-project/internal/core/application/usecases/queries"
	"github.com/anj1741/Routegenius-final-project/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/suite"
)

type GetUserNotificationsQueryHandlerTestSuite struct {
	PostgresQuerySuite
}

func (suite *GetUserNotificationsQueryHandlerTestSuite) TestHandle_ReturnsNewestFirst() {
	userID := kernel.NewUUID()
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	suite.seedNotification(userID, "oldest", true, base)
	suite.seedNotification(userID, "newest", false, base.Add(2*time.Hour))
	suite.seedNotification(userID, "middle", false, base.Add(time.Hour))
	suite.seedNotification(kernel.NewUUID(), "someone else", false, base)

	handler := queries.NewGetUserNotificationsQueryHandler(suite.db)
	query, err := queries.NewGetUserNotificationsQuery(userID, false)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("newest", result[0].Message)
	suite.Equal("middle", result[1].Message)
	suite.Equal("oldest", result[2].Message)
	suite.True(result[2].IsRead)
	suite.False(result[0].IsRead)
	suite.Equal(userID, result[0].UserID)
	suite.Equal("IN_TRANSIT", result[0].RelatedStatus)
}

func (suite *GetUserNotificationsQueryHandlerTestSuite) TestHandle_UnreadOnly_FiltersReadNotifications() {
	userID := kernel.NewUUID()
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	suite.seedNotification(userID, "read", true, base)
	suite.seedNotification(userID, "unread", false, base.Add(time.Hour))

	handler := queries.NewGetUserNotificationsQueryHandler(suite.db)
	query, err := queries.NewGetUserNotificationsQuery(userID, true)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("unread", result[0].Message)
}

func (suite *GetUserNotificationsQueryHandlerTestSuite) TestHandle_UnknownUser_ReturnsEmptySlice() {
	handler := queries.NewGetUserNotificationsQueryHandler(suite.db)
	query, err := queries.NewGetUserNotificationsQuery(kernel.NewUUID(), false)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func TestGetUserNotificationsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetUserNotificationsQueryHandlerTestSuite))
}
