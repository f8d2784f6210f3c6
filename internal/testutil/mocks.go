package testutil

import (
	"github.com/pashagolub/pgxmock/v4"
)

// NewMockConn creates a pgxmock connection that already expects
// the server version query to return the given version
func NewMockConn(version int) (pgxmock.PgxConnIface, error) {
	mock, err := pgxmock.NewConn()
	if err != nil {
		return nil, err
	}
	ExpectVersion(mock, version)
	return mock, nil
}

// ExpectVersion sets up the server version query expectation
func ExpectVersion(mock pgxmock.PgxConnIface, version int) {
	mock.ExpectQuery("server_version_num").
		WillReturnRows(pgxmock.NewRows([]string{"current_setting"}).AddRow(version))
}
