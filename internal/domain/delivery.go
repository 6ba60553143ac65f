package domain

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// DeliveryResult 单个接收者的投递结果
type DeliveryResult struct {
	RecipientID  int64
	Scenario     Scenario
	InAppErr     error
	EmailErr     error
	EmailSkipped bool
}

// OK 站内信和邮件均未失败
func (r DeliveryResult) OK() bool {
	return r.InAppErr == nil && r.EmailErr == nil
}

// Err 合并站内信和邮件的错误
func (r DeliveryResult) Err() error {
	var err *multierror.Error
	if r.InAppErr != nil {
		err = multierror.Append(err, fmt.Errorf("recipient %d in-app: %w", r.RecipientID, r.InAppErr))
	}
	if r.EmailErr != nil {
		err = multierror.Append(err, fmt.Errorf("recipient %d email: %w", r.RecipientID, r.EmailErr))
	}
	return err.ErrorOrNil()
}

// DeliveryReport 一次分发的尽力投递报告
type DeliveryReport struct {
	DispatchID string
	Scenario   Scenario
	Actor      Actor
	Results    []DeliveryResult
}

// SuccessCount 完全成功的接收者数量
func (r DeliveryReport) SuccessCount() int {
	cnt := 0
	for i := range r.Results {
		if r.Results[i].OK() {
			cnt++
		}
	}
	return cnt
}

// Err 汇总所有接收者的失败，全部成功时返回 nil
func (r DeliveryReport) Err() error {
	var err *multierror.Error
	for i := range r.Results {
		if e := r.Results[i].Err(); e != nil {
			err = multierror.Append(err, e)
		}
	}
	return err.ErrorOrNil()
}
