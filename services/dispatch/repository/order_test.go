package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickbite/dispatch/services/dispatch"
)

func setupOrderRepoTest(t *testing.T) (*OrderRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewOrderRepository(sqlxDB)

	cleanup := func() {
		sqlxDB.Close()
	}
	return repo, mock, cleanup
}

func TestAssignCourier(t *testing.T) {
	repo, mock, cleanup := setupOrderRepoTest(t)
	defer cleanup()

	assignedAt := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("^\\s*INSERT INTO order_assignments").
		WithArgs(sqlmock.AnyArg(), "order-1", "courier-1", assignedAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("assign-1"))
	mock.ExpectExec("^\\s*INSERT INTO assignment_audit_log").
		WithArgs(sqlmock.AnyArg(), "order-1", "order order-1 assigned to courier courier-1", assignedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assignmentID, err := repo.AssignCourier(context.Background(), "order-1", "courier-1", assignedAt)

	require.NoError(t, err)
	assert.Equal(t, "assign-1", assignmentID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignCourierAuditFailureRollsBack(t *testing.T) {
	repo, mock, cleanup := setupOrderRepoTest(t)
	defer cleanup()

	assignedAt := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("^\\s*INSERT INTO order_assignments").
		WithArgs(sqlmock.AnyArg(), "order-1", "courier-1", assignedAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("assign-1"))
	mock.ExpectExec("^\\s*INSERT INTO assignment_audit_log").
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := repo.AssignCourier(context.Background(), "order-1", "courier-1", assignedAt)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOrderOrigin(t *testing.T) {
	repo, mock, cleanup := setupOrderRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^SELECT origin_latitude, origin_longitude FROM orders").
		WithArgs("order-1").
		WillReturnRows(sqlmock.NewRows([]string{"origin_latitude", "origin_longitude"}).AddRow(6.453236, 3.542878))

	origin, err := repo.GetOrderOrigin(context.Background(), "order-1")

	require.NoError(t, err)
	assert.Equal(t, 6.453236, origin.Latitude)
	assert.Equal(t, 3.542878, origin.Longitude)
}

func TestGetOrderOriginNotFound(t *testing.T) {
	repo, mock, cleanup := setupOrderRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^SELECT origin_latitude, origin_longitude FROM orders").
		WithArgs("order-999").
		WillReturnRows(sqlmock.NewRows([]string{"origin_latitude", "origin_longitude"}))

	origin, err := repo.GetOrderOrigin(context.Background(), "order-999")

	assert.Nil(t, origin)
	assert.ErrorIs(t, err, dispatch.ErrOrderNotFound)
}

func TestGetAssignedCourier(t *testing.T) {
	repo, mock, cleanup := setupOrderRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^SELECT courier_id FROM order_assignments").
		WithArgs("order-1").
		WillReturnRows(sqlmock.NewRows([]string{"courier_id"}).AddRow("courier-1"))

	courierID, err := repo.GetAssignedCourier(context.Background(), "order-1")

	require.NoError(t, err)
	assert.Equal(t, "courier-1", courierID)
}

func TestGetAssignedCourierUnassigned(t *testing.T) {
	repo, mock, cleanup := setupOrderRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^SELECT courier_id FROM order_assignments").
		WithArgs("order-2").
		WillReturnRows(sqlmock.NewRows([]string{"courier_id"}))

	courierID, err := repo.GetAssignedCourier(context.Background(), "order-2")

	require.NoError(t, err)
	assert.Empty(t, courierID)
}

func TestCountOrders(t *testing.T) {
	repo, mock, cleanup := setupOrderRepoTest(t)
	defer cleanup()

	mock.ExpectQuery("^\\s*SELECT \\(SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"total", "assigned"}).AddRow(25, 18))

	total, assigned, err := repo.CountOrders(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 25, total)
	assert.Equal(t, 18, assigned)
}
