package strategy

import (
	"context"
	"testing"

	"gitee.com/flycash/osh-notification/internal/domain"
	"gitee.com/flycash/osh-notification/internal/errs"
	channelmocks "gitee.com/flycash/osh-notification/internal/service/channel/mocks"
	"gitee.com/flycash/osh-notification/internal/service/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubStrategy struct {
	descriptor Descriptor
	content    domain.NotificationContent
	gotActor   domain.Actor
}

func (s *stubStrategy) Descriptor() Descriptor {
	return s.descriptor
}

func (s *stubStrategy) Compose(_ context.Context, req Request) domain.NotificationContent {
	s.gotActor = req.Actor
	return s.content
}

func defaultStrategies() []Strategy {
	return DefaultStrategies(Config{FrontendBaseURL: testBaseURL}, template.NewStaticCatalog(template.DefaultTemplates()...))
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		strategies func() []Strategy
		wantErr    error
	}{
		{
			name:       "全部场景",
			strategies: defaultStrategies,
		},
		{
			name: "缺少场景",
			strategies: func() []Strategy {
				return defaultStrategies()[1:]
			},
			wantErr: errs.ErrStrategyMisconfigured,
		},
		{
			name: "重复注册",
			strategies: func() []Strategy {
				return append(defaultStrategies(), NewCancelledStrategy(Config{}, template.NewStaticCatalog()))
			},
			wantErr: errs.ErrStrategyMisconfigured,
		},
		{
			name: "未知场景",
			strategies: func() []Strategy {
				return append(defaultStrategies(), &stubStrategy{descriptor: Descriptor{Scenario: "STATUS_UPDATE"}})
			},
			wantErr: errs.ErrStrategyMisconfigured,
		},
		{
			name: "缺少默认触发方",
			strategies: func() []Strategy {
				res := defaultStrategies()
				res[0] = &stubStrategy{descriptor: Descriptor{Scenario: domain.ScenarioAppointmentRequested, ActorAware: true}}
				return res
			},
			wantErr: errs.ErrStrategyMisconfigured,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r, err := NewRegistry(nil, nil, tc.strategies()...)
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr == nil {
				assert.NotNil(t, r)
			}
		})
	}
}

func TestRegistryComposeResolvesActor(t *testing.T) {
	t.Parallel()

	aware := &stubStrategy{descriptor: Descriptor{Scenario: domain.ScenarioMedicalVisitPlanned, ActorAware: true, DefaultActor: domain.ActorMedicalStaff}}
	unaware := &stubStrategy{descriptor: Descriptor{Scenario: domain.ScenarioAppointmentCancelled}}
	strategies := defaultStrategies()
	strategies[3], strategies[4] = unaware, aware
	r, err := NewRegistry(nil, nil, strategies...)
	require.NoError(t, err)

	req := Request{Recipient: nurseUser, Appointment: testAppointment()}
	_, err = r.Compose(context.Background(), domain.ScenarioMedicalVisitPlanned, req)
	require.NoError(t, err)
	assert.Equal(t, domain.ActorMedicalStaff, aware.gotActor)

	req.Actor = domain.ActorRH
	_, err = r.Compose(context.Background(), domain.ScenarioMedicalVisitPlanned, req)
	require.NoError(t, err)
	assert.Equal(t, domain.ActorRH, aware.gotActor)

	_, err = r.Compose(context.Background(), domain.ScenarioAppointmentCancelled, req)
	require.NoError(t, err)
	assert.Equal(t, domain.ActorUnknown, unaware.gotActor)

	_, err = r.Compose(context.Background(), "STATUS_UPDATE", req)
	assert.ErrorIs(t, err, errs.ErrInvalidParameter)
	_, err = r.Compose(context.Background(), domain.ScenarioAppointmentCancelled, Request{Appointment: testAppointment()})
	assert.ErrorIs(t, err, errs.ErrInvalidParameter)
	_, err = r.Compose(context.Background(), domain.ScenarioAppointmentCancelled, Request{Recipient: nurseUser})
	assert.ErrorIs(t, err, errs.ErrInvalidParameter)
}

func TestRegistryDispatch(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		mock      func(ctrl *gomock.Controller) (*channelmocks.MockInApp, *channelmocks.MockEmail)
		recipient *domain.User
		scenario  domain.Scenario
		want      domain.DeliveryResult
	}{
		{
			name: "站内信和邮件都成功",
			mock: func(ctrl *gomock.Controller) (*channelmocks.MockInApp, *channelmocks.MockEmail) {
				inApp := channelmocks.NewMockInApp(ctrl)
				email := channelmocks.NewMockEmail(ctrl)
				inApp.EXPECT().Send(gomock.Any(), nurseUser.ID, gomock.Any()).Return(nil)
				email.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, msg domain.EmailMessage) error {
						assert.Equal(t, nurseUser.Email, msg.To)
						assert.Equal(t, "appointment-cancellation-medical-template", msg.TemplateID)
						assert.Equal(t, "Voir les détails", msg.Context["actionLabel"])
						return nil
					})
				return inApp, email
			},
			recipient: nurseUser,
			scenario:  domain.ScenarioAppointmentCancelled,
			want:      domain.DeliveryResult{RecipientID: nurseUser.ID, Scenario: domain.ScenarioAppointmentCancelled},
		},
		{
			name: "站内信失败不影响邮件",
			mock: func(ctrl *gomock.Controller) (*channelmocks.MockInApp, *channelmocks.MockEmail) {
				inApp := channelmocks.NewMockInApp(ctrl)
				email := channelmocks.NewMockEmail(ctrl)
				inApp.EXPECT().Send(gomock.Any(), rhUser.ID, gomock.Any()).Return(errs.ErrSendInAppFailed)
				email.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)
				return inApp, email
			},
			recipient: rhUser,
			scenario:  domain.ScenarioAppointmentCancelled,
			want: domain.DeliveryResult{
				RecipientID: rhUser.ID,
				Scenario:    domain.ScenarioAppointmentCancelled,
				InAppErr:    errs.ErrSendInAppFailed,
			},
		},
		{
			name: "邮件失败",
			mock: func(ctrl *gomock.Controller) (*channelmocks.MockInApp, *channelmocks.MockEmail) {
				inApp := channelmocks.NewMockInApp(ctrl)
				email := channelmocks.NewMockEmail(ctrl)
				inApp.EXPECT().Send(gomock.Any(), employeeUser.ID, gomock.Any()).Return(nil)
				email.EXPECT().Send(gomock.Any(), gomock.Any()).Return(errs.ErrSendEmailFailed)
				return inApp, email
			},
			recipient: employeeUser,
			scenario:  domain.ScenarioMedicalVisitPlanned,
			want: domain.DeliveryResult{
				RecipientID: employeeUser.ID,
				Scenario:    domain.ScenarioMedicalVisitPlanned,
				EmailErr:    errs.ErrSendEmailFailed,
			},
		},
		{
			name: "策略跳过邮件",
			mock: func(ctrl *gomock.Controller) (*channelmocks.MockInApp, *channelmocks.MockEmail) {
				inApp := channelmocks.NewMockInApp(ctrl)
				email := channelmocks.NewMockEmail(ctrl)
				inApp.EXPECT().Send(gomock.Any(), employeeUser.ID, gomock.Any()).Return(nil)
				return inApp, email
			},
			recipient: employeeUser,
			scenario:  domain.ScenarioAppointmentRequested,
			want: domain.DeliveryResult{
				RecipientID:  employeeUser.ID,
				Scenario:     domain.ScenarioAppointmentRequested,
				EmailSkipped: true,
			},
		},
		{
			name: "接收者没有邮箱",
			mock: func(ctrl *gomock.Controller) (*channelmocks.MockInApp, *channelmocks.MockEmail) {
				inApp := channelmocks.NewMockInApp(ctrl)
				email := channelmocks.NewMockEmail(ctrl)
				inApp.EXPECT().Send(gomock.Any(), int64(77), gomock.Any()).Return(nil)
				return inApp, email
			},
			recipient: &domain.User{ID: 77, Roles: []domain.RoleName{domain.RoleDoctor}},
			scenario:  domain.ScenarioAppointmentCancelled,
			want: domain.DeliveryResult{
				RecipientID:  77,
				Scenario:     domain.ScenarioAppointmentCancelled,
				EmailSkipped: true,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			inApp, email := tc.mock(ctrl)
			r, err := NewRegistry(inApp, email, defaultStrategies()...)
			require.NoError(t, err)

			res, err := r.Dispatch(context.Background(), tc.scenario, Request{Recipient: tc.recipient, Appointment: testAppointment()})
			require.NoError(t, err)
			assert.Equal(t, tc.want, res)
		})
	}
}

func TestRegistryDispatchInvalidRequest(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r, err := NewRegistry(channelmocks.NewMockInApp(ctrl), channelmocks.NewMockEmail(ctrl), defaultStrategies()...)
	require.NoError(t, err)
	_, err = r.Dispatch(context.Background(), domain.ScenarioAppointmentConfirmed, Request{Appointment: testAppointment()})
	assert.ErrorIs(t, err, errs.ErrInvalidParameter)
}
