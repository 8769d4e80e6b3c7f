package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/facultyroster/internal/app/controllers"
	"github.com/yigit/facultyroster/internal/app/loader"
	"github.com/yigit/facultyroster/internal/app/models"
	"github.com/yigit/facultyroster/internal/app/repositories"
	"github.com/yigit/facultyroster/internal/app/services"
	"github.com/yigit/facultyroster/internal/pkg/apperrors"
)

const rosterCSV = `"Daniel P. Aalberts","Physics","Kennedy P. Richardson '71 Professor of Physics","1989, B.S., Massachusetts Institute of Technology","1994, Ph.D., Massachusetts Institute of Technology"
"Colin C. Adams","Mathematics","Thomas T. Read Professor of Mathematics","1978, B.S., Massachusetts Institute of Technology","1983, Ph.D., University of Wisconsin, Madison"
"Ada Lovelace","Mathematics","Lecturer","2001, M.A., University of London","2001, M.Phil., University of London"
`

// switchLoader serves rosterCSV until err is set
type switchLoader struct {
	err error
}

func (l *switchLoader) Load(ctx context.Context) ([]*models.Instructor, error) {
	if l.err != nil {
		return nil, l.err
	}
	return loader.LoadReader(strings.NewReader(rosterCSV), loader.CSVOptions{})
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestRouter(t *testing.T, l services.RosterLoader, load bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := services.NewRosterService(l, repositories.NewInstructorRepository(), zerolog.Nop())
	if load {
		_, err := svc.Reload(context.Background())
		require.NoError(t, err)
	}

	router := gin.New()
	SetupRouter(router,
		controllers.NewInstructorController(svc),
		controllers.NewDepartmentController(svc),
		controllers.NewDegreeController(svc),
		controllers.NewRosterController(svc),
	)
	return router
}

func do(t *testing.T, router *gin.Engine, method, path, body string) (int, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func TestPing(t *testing.T) {
	router := newTestRouter(t, &switchLoader{}, false)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}

func TestRoutesBeforeLoad(t *testing.T) {
	router := newTestRouter(t, &switchLoader{}, false)

	for _, path := range []string{"/api/v1/instructors", "/api/v1/departments", "/api/v1/degrees/levels", "/api/v1/roster"} {
		code, env := do(t, router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusServiceUnavailable, code, path)
		require.NotNil(t, env.Error, path)
		assert.Equal(t, "ROS_004", env.Error.Code, path)
	}
}

func TestListInstructors(t *testing.T) {
	router := newTestRouter(t, &switchLoader{}, true)

	code, env := do(t, router, http.MethodGet, "/api/v1/instructors?department=mathematics&size=1&page=2", "")
	require.Equal(t, http.StatusOK, code)

	var page struct {
		Items []struct {
			Name string `json:"name"`
		} `json:"items"`
		Pagination struct {
			CurrentPage int `json:"currentPage"`
			TotalPages  int `json:"totalPages"`
			TotalItems  int `json:"totalItems"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Ada Lovelace", page.Items[0].Name)
	assert.Equal(t, 2, page.Pagination.CurrentPage)
	assert.Equal(t, 2, page.Pagination.TotalPages)
	assert.Equal(t, 2, page.Pagination.TotalItems)

	code, env = do(t, router, http.MethodGet, "/api/v1/instructors?level=doctorate&institution=madison", "")
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &page))
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Colin C. Adams", page.Items[0].Name)

	code, env = do(t, router, http.MethodGet, "/api/v1/instructors?level=postdoc", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VAL_001", env.Error.Code)
}

func TestGetInstructor(t *testing.T) {
	router := newTestRouter(t, &switchLoader{}, true)
	id := models.NewInstructor("Colin C. Adams", "Mathematics", "", nil).ID()

	code, env := do(t, router, http.MethodGet, "/api/v1/instructors/"+id.String(), "")
	require.Equal(t, http.StatusOK, code)

	var got struct {
		ID            string `json:"id"`
		Record        string `json:"record"`
		HighestDegree struct {
			Kind        string `json:"kind"`
			Institution string `json:"institution"`
			Level       string `json:"level"`
		} `json:"highestDegree"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, id.String(), got.ID)
	assert.Equal(t, "Ph.D.", got.HighestDegree.Kind)
	assert.Equal(t, "University of Wisconsin, Madison", got.HighestDegree.Institution)
	assert.Equal(t, "DOCTORATE", got.HighestDegree.Level)
	assert.True(t, strings.HasPrefix(got.Record, `"Colin C. Adams","Mathematics",`))

	code, env = do(t, router, http.MethodGet, "/api/v1/instructors/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VAL_001", env.Error.Code)

	code, env = do(t, router, http.MethodGet, "/api/v1/instructors/"+models.NewInstructor("Nobody", "Nowhere", "", nil).ID().String(), "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "RES_001", env.Error.Code)
}

func TestGetDegreeYears(t *testing.T) {
	router := newTestRouter(t, &switchLoader{}, true)
	id := models.NewInstructor("Ada Lovelace", "Mathematics", "", nil).ID()

	code, env := do(t, router, http.MethodGet, "/api/v1/instructors/"+id.String()+"/degree-years", "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"counts":[[2001,2]],"total":2}`, string(env.Data))
}

func TestDepartmentRoutes(t *testing.T) {
	router := newTestRouter(t, &switchLoader{}, true)

	code, env := do(t, router, http.MethodGet, "/api/v1/departments", "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"counts":[["Mathematics",2],["Physics",1]],"total":3}`, string(env.Data))

	code, env = do(t, router, http.MethodGet, "/api/v1/departments/physics/instructors", "")
	require.Equal(t, http.StatusOK, code)
	var list []struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Daniel P. Aalberts", list[0].Name)

	code, env = do(t, router, http.MethodGet, "/api/v1/departments/Chemistry/instructors", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "RES_001", env.Error.Code)
}

func TestDegreeCountRoutes(t *testing.T) {
	router := newTestRouter(t, &switchLoader{}, true)

	code, env := do(t, router, http.MethodGet, "/api/v1/degrees/levels", "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"counts":[["BACHELOR",2],["MASTER",2],["DOCTORATE",2]],"total":6}`, string(env.Data))

	code, env = do(t, router, http.MethodGet, "/api/v1/degrees/kinds", "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"counts":[["B.S.",2],["M.A.",1],["M.Phil.",1],["Ph.D.",2]],"total":6}`, string(env.Data))

	code, env = do(t, router, http.MethodGet, "/api/v1/degrees/institutions", "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"counts":[["Massachusetts Institute of Technology",3],["University of London",2],["University of Wisconsin, Madison",1]],"total":6}`, string(env.Data))
}

func TestParseDegreeRoute(t *testing.T) {
	router := newTestRouter(t, &switchLoader{}, false)

	code, env := do(t, router, http.MethodPost, "/api/v1/degrees/parse", `{"description":"1994, Ph.D., Massachusetts Institute of Technology"}`)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{
		"year": 1994,
		"kind": "Ph.D.",
		"institution": "Massachusetts Institute of Technology",
		"level": "DOCTORATE",
		"text": "1994, Ph.D., Massachusetts Institute of Technology"
	}`, string(env.Data))

	code, env = do(t, router, http.MethodPost, "/api/v1/degrees/parse", `{"description":"Ph.D., MIT"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "ROS_001", env.Error.Code)

	code, env = do(t, router, http.MethodPost, "/api/v1/degrees/parse", `{}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VAL_001", env.Error.Code)
}

func TestRosterReloadRoutes(t *testing.T) {
	l := &switchLoader{}
	router := newTestRouter(t, l, false)

	code, env := do(t, router, http.MethodPost, "/api/v1/roster/reload", "")
	require.Equal(t, http.StatusOK, code)
	var status struct {
		Instructors int `json:"instructors"`
		Departments int `json:"departments"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &status))
	assert.Equal(t, 3, status.Instructors)
	assert.Equal(t, 2, status.Departments)

	l.err = apperrors.NewSourceReadError("faculty.csv", errors.New("permission denied"))
	code, env = do(t, router, http.MethodPost, "/api/v1/roster/reload", "")
	assert.Equal(t, http.StatusBadGateway, code)
	assert.Equal(t, "ROS_003", env.Error.Code)

	// previous roster is still served
	code, env = do(t, router, http.MethodGet, "/api/v1/roster", "")
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &status))
	assert.Equal(t, 3, status.Instructors)
}
