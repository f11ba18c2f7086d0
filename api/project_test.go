package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"autotrac/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)

	oldDB := database.DB
	database.DB = gormDB
	return mock, func() {
		database.DB = oldDB
		sqlDB.Close()
	}
}

func TestProjectHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// 同名查询无记录
	mock.ExpectQuery("SELECT .* FROM `projects`").
		WillReturnRows(sqlmock.NewRows([]string{}))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `projects`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.POST("/projects/", NewProjectHandler().Create)

	body := `{"name":"Acme","client":"Acme Inc.","hourly_rate":200}`
	req := httptest.NewRequest("POST", "/projects/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "创建成功", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

// 同名项目返回已有记录，不新建
func TestProjectHandler_Create_Duplicate(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `projects`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at", "updated_at"}).
			AddRow(7, "Acme", time.Now(), time.Now()))

	router := gin.New()
	router.POST("/projects/", NewProjectHandler().Create)

	body := `{"name":"Acme"}`
	req := httptest.NewRequest("POST", "/projects/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "项目已存在", resp["message"])
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(7), data["id"])
	// 无 INSERT 期望，ExpectationsWereMet 保证没有落库
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectHandler_Create_MissingName(t *testing.T) {
	router := gin.New()
	router.POST("/projects/", NewProjectHandler().Create)

	req := httptest.NewRequest("POST", "/projects/", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestProjectHandler_List(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `projects`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at", "updated_at"}).
			AddRow(1, "Acme", time.Now(), time.Now()).
			AddRow(2, "Beta", time.Now(), time.Now()))

	router := gin.New()
	router.GET("/projects/", NewProjectHandler().List)

	req := httptest.NewRequest("GET", "/projects/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp["data"], 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

// 删除项目级联删除其下的工时和收入记录
func TestProjectHandler_Delete_Cascade(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `projects`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(3, "Acme"))

	// 物理删除子记录和项目本身
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `time_entries`").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM `income_records`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM `projects`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.DELETE("/projects/:id/", NewProjectHandler().Delete)

	req := httptest.NewRequest("DELETE", "/projects/3/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["deleted_project_id"])
	require.NoError(t, mock.ExpectationsWereMet())
}

// 删除项目后可以重建同名项目：行已物理删除，不会撞唯一索引
func TestProjectHandler_DeleteThenRecreate(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `projects`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Acme"))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `time_entries`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM `income_records`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM `projects`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// 重建：同名查询无记录（行已不存在），正常插入
	mock.ExpectQuery("SELECT .* FROM `projects`").
		WillReturnRows(sqlmock.NewRows([]string{}))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `projects`").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	router := gin.New()
	h := NewProjectHandler()
	router.DELETE("/projects/:id/", h.Delete)
	router.POST("/projects/", h.Create)

	req := httptest.NewRequest("DELETE", "/projects/1/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)

	body := `{"name":"Acme"}`
	req = httptest.NewRequest("POST", "/projects/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "创建成功", resp["message"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProjectHandler_Delete_NotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `projects`").
		WillReturnRows(sqlmock.NewRows([]string{}))

	router := gin.New()
	router.DELETE("/projects/:id/", NewProjectHandler().Delete)

	req := httptest.NewRequest("DELETE", "/projects/99/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 404, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
