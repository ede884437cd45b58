package service_test

import (
	"context"
	"flag"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/events"
	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/export"
	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/repository"
	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/rollup"
	"github.com/febinsug/PDSL-eHATv5-sub000/internal/timesheet/service"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/logger"
	"github.com/febinsug/PDSL-eHATv5-sub000/pkg/testutil"
)

var suite *testutil.IntegrationSuite

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		// Integration tests all call testutil.SkipIfShort, so the
		// container is not needed in short mode.
		os.Exit(m.Run())
	}

	ctx := context.Background()

	var err error
	suite, err = testutil.NewIntegrationSuite(ctx)
	if err != nil {
		log.Fatalf("failed to create integration suite: %v", err)
	}
	defer testutil.TerminateContainer(ctx)

	os.Exit(m.Run())
}

// testServices bundles the services under test with their collaborators
type testServices struct {
	timesheets *service.TimesheetService
	approvals  *service.ApprovalService
	reports    *service.ReportService
	exports    *service.ExportService

	userRepo    *repository.UserRepository
	projectRepo *repository.ProjectRepository
	recordRepo  *repository.RecordRepository
	published   *testutil.MockPublisher
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	suite.Reset(t)

	testLogger := logger.New("service-test", "test")
	mock := testutil.NewMockPublisher()
	publisher := events.NewTimesheetEventPublisherWith(mock, testLogger)
	engine := rollup.New(language.English)

	recordRepo := repository.NewRecordRepository(suite.DB)
	userRepo := repository.NewUserRepository(suite.DB)
	projectRepo := repository.NewProjectRepository(suite.DB)

	return &testServices{
		timesheets:  service.NewTimesheetService(recordRepo, userRepo, projectRepo, publisher, testLogger),
		approvals:   service.NewApprovalService(recordRepo, engine, publisher, testLogger),
		reports:     service.NewReportService(recordRepo, projectRepo, engine, testLogger),
		exports:     service.NewExportService(recordRepo, projectRepo, engine, export.NewSerializer(testLogger), publisher, testLogger),
		userRepo:    userRepo,
		projectRepo: projectRepo,
		recordRepo:  recordRepo,
		published:   mock,
	}
}

func (ts *testServices) user(t *testing.T, ctx context.Context, opts ...func(*testutil.UserFixture)) *repository.User {
	t.Helper()
	fixture := suite.Fixtures.User(opts...)
	user := &repository.User{
		Email:        fixture.Email,
		PasswordHash: fixture.PasswordHash,
		FirstName:    fixture.FirstName,
		LastName:     fixture.LastName,
		Role:         fixture.Role,
		IsManager:    fixture.IsManager,
		Status:       fixture.Status,
	}
	require.NoError(t, ts.userRepo.Create(ctx, user))
	return user
}

func (ts *testServices) project(t *testing.T, ctx context.Context, opts ...func(*testutil.ProjectFixture)) *repository.Project {
	t.Helper()
	fixture := suite.Fixtures.Project(opts...)
	project := &repository.Project{
		Name:           fixture.Name,
		Client:         &fixture.Client,
		AllocatedHours: fixture.AllocatedHours,
		Status:         fixture.Status,
	}
	require.NoError(t, ts.projectRepo.Create(ctx, project))
	return project
}
