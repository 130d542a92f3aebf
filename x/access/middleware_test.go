package access

import (
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/deco-cx/gatekeeper/core"
	mock_core "github.com/deco-cx/gatekeeper/core/mock"
	"github.com/deco-cx/gatekeeper/internal/testutil"
)

func TestMain(m *testing.M) {
	log.Println("Test Start")

	testutil.SetupMockTraceProvider()

	m.Run()

	log.Println("Test End")
}

func invokeRestrict(t *testing.T, service core.AccessService) *httptest.ResponseRecorder {
	t.Helper()

	c, req, rec, _ := testutil.CreateHttpRequest()
	req.Header.Set(core.PrincipalHeader, "U1")
	c.SetParamNames("team")
	c.SetParamValues("5")

	handler := Identify(Restrict(service, "AGENTS_DELETE")(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}))

	err := handler(c)
	assert.NoError(t, err)

	return rec
}

func TestRestrictAllows(t *testing.T) {

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccess := mock_core.NewMockAccessService(ctrl)
	mockAccess.EXPECT().
		CanAccess(gomock.Any(), "U1", core.TeamRef("5"), "AGENTS_DELETE", gomock.Any()).
		Return(true, nil).
		Times(1)

	rec := invokeRestrict(t, mockAccess)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRestrictDenies(t *testing.T) {

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccess := mock_core.NewMockAccessService(ctrl)
	mockAccess.EXPECT().
		CanAccess(gomock.Any(), "U1", core.TeamRef("5"), "AGENTS_DELETE", gomock.Any()).
		Return(false, nil).
		Times(1)

	rec := invokeRestrict(t, mockAccess)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// an aborted check is an error, never a silent allow
func TestRestrictFailsClosedOnError(t *testing.T) {

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAccess := mock_core.NewMockAccessService(ctrl)
	mockAccess.EXPECT().
		CanAccess(gomock.Any(), "U1", core.TeamRef("5"), "AGENTS_DELETE", gomock.Any()).
		Return(false, errors.New("store unreachable")).
		Times(1)

	rec := invokeRestrict(t, mockAccess)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
