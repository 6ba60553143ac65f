package channel

import (
	"context"
	"errors"
	"testing"

	"gitee.com/flycash/osh-notification/internal/domain"
	"gitee.com/flycash/osh-notification/internal/errs"
	"gitee.com/flycash/osh-notification/internal/service/provider"
	providermocks "gitee.com/flycash/osh-notification/internal/service/provider/mocks"
	"gitee.com/flycash/osh-notification/internal/service/provider/sequential"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestEmailChannelSend(t *testing.T) {
	t.Parallel()

	msg := domain.EmailMessage{To: "jean@example.com", TemplateID: "appointment-generic", Subject: "s"}
	errDown := errors.New("smtp down")

	testCases := []struct {
		name      string
		msg       domain.EmailMessage
		providers func(ctrl *gomock.Controller) []provider.Provider
		assertErr assert.ErrorAssertionFunc
	}{
		{
			name: "第一个供应商成功",
			msg:  msg,
			providers: func(ctrl *gomock.Controller) []provider.Provider {
				p1 := providermocks.NewMockProvider(ctrl)
				p1.EXPECT().Send(gomock.Any(), msg).Return(nil)
				p2 := providermocks.NewMockProvider(ctrl)
				return []provider.Provider{p1, p2}
			},
			assertErr: assert.NoError,
		},
		{
			name: "第一个失败后切换",
			msg:  msg,
			providers: func(ctrl *gomock.Controller) []provider.Provider {
				p1 := providermocks.NewMockProvider(ctrl)
				p1.EXPECT().Send(gomock.Any(), msg).Return(errDown)
				p2 := providermocks.NewMockProvider(ctrl)
				p2.EXPECT().Send(gomock.Any(), msg).Return(nil)
				return []provider.Provider{p1, p2}
			},
			assertErr: assert.NoError,
		},
		{
			name: "全部失败",
			msg:  msg,
			providers: func(ctrl *gomock.Controller) []provider.Provider {
				p1 := providermocks.NewMockProvider(ctrl)
				p1.EXPECT().Send(gomock.Any(), msg).Return(errDown)
				p2 := providermocks.NewMockProvider(ctrl)
				p2.EXPECT().Send(gomock.Any(), msg).Return(errDown)
				return []provider.Provider{p1, p2}
			},
			assertErr: func(t assert.TestingT, err error, _ ...any) bool {
				return assert.ErrorIs(t, err, errs.ErrSendEmailFailed) && assert.ErrorIs(t, err, errDown)
			},
		},
		{
			name: "没有供应商",
			msg:  msg,
			providers: func(_ *gomock.Controller) []provider.Provider {
				return nil
			},
			assertErr: func(t assert.TestingT, err error, _ ...any) bool {
				return assert.ErrorIs(t, err, errs.ErrNoAvailableProvider)
			},
		},
		{
			name: "收件人为空",
			msg:  domain.EmailMessage{TemplateID: "appointment-generic"},
			providers: func(ctrl *gomock.Controller) []provider.Provider {
				return []provider.Provider{providermocks.NewMockProvider(ctrl)}
			},
			assertErr: func(t assert.TestingT, err error, _ ...any) bool {
				return assert.ErrorIs(t, err, errs.ErrEmailAddressEmpty)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ch := NewEmailChannel(sequential.NewSelectorBuilder(tc.providers(ctrl)))
			tc.assertErr(t, ch.Send(context.Background(), tc.msg))
		})
	}
}
