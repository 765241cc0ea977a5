// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"fmt"
	"io"
	"time"

	"github.com/moneyprinter/protocol-deploy/pkg/models"
	"github.com/moneyprinter/protocol-deploy/pkg/utils"
	"github.com/olekukonko/tablewriter"
	"go.uber.org/zap"
)

var Logger *UserLog

type UserLog struct {
	log    *zap.Logger
	writer io.Writer
}

// New builds a UserLog without touching the package level Logger
func New(log *zap.Logger, userwriter io.Writer) *UserLog {
	if log == nil {
		log = zap.NewNop()
	}
	return &UserLog{
		log:    log,
		writer: userwriter,
	}
}

// PrintToUser prints msg directly to stdout (command output)
// Does NOT log to avoid duplication - logs should go to stderr separately
func (ul *UserLog) PrintToUser(msg string, args ...interface{}) {
	formattedMsg := fmt.Sprintf(msg, args...)
	_, _ = fmt.Fprintln(ul.writer, formattedMsg)
}

// Info logs an info message
func (ul *UserLog) Info(msg string, args ...interface{}) {
	ul.log.Info(fmt.Sprintf(msg, args...))
}

// Error logs an error message
func (ul *UserLog) Error(msg string, args ...interface{}) {
	ul.log.Error(fmt.Sprintf(msg, args...))
}

// RedXToUser prints a red X error message to the user
func (ul *UserLog) RedXToUser(msg string, args ...interface{}) {
	formattedMsg := fmt.Sprintf("✗ %s", fmt.Sprintf(msg, args...))
	_, _ = fmt.Fprintln(ul.writer, formattedMsg)
	ul.log.Error(formattedMsg)
}

// GreenCheckmarkToUser prints a green checkmark success message to the user
func (ul *UserLog) GreenCheckmarkToUser(msg string, args ...interface{}) {
	formattedMsg := fmt.Sprintf("✓ %s", fmt.Sprintf(msg, args...))
	_, _ = fmt.Fprintln(ul.writer, formattedMsg)
	ul.log.Info(formattedMsg)
}

// StepTracker tracks progress of a multi-step operation with elapsed time
type StepTracker struct {
	stepStart time.Time
	stepName  string
	ul        *UserLog
}

func NewStepTracker(ul *UserLog) *StepTracker {
	return &StepTracker{ul: ul}
}

// Start begins tracking a new step
func (st *StepTracker) Start(stepName string) {
	st.stepStart = time.Now()
	st.stepName = stepName
	st.ul.PrintToUser("%s...", stepName)
}

// Complete marks the step as done with success
func (st *StepTracker) Complete(suffix string) {
	elapsed := time.Since(st.stepStart)
	if suffix != "" {
		st.ul.GreenCheckmarkToUser("%s (%.1fs) - %s", st.stepName, elapsed.Seconds(), suffix)
	} else {
		st.ul.GreenCheckmarkToUser("%s (%.1fs)", st.stepName, elapsed.Seconds())
	}
}

// Failed marks the step as failed with an error
func (st *StepTracker) Failed(reason string) {
	elapsed := time.Since(st.stepStart)
	st.ul.RedXToUser("%s (%.1fs) - FAILED: %s", st.stepName, elapsed.Seconds(), reason)
}

// PrintNetworkConfig prints a network config with the API key masked
func PrintNetworkConfig(w io.Writer, network string, cfg *models.NetworkConfig) error {
	table := tablewriter.NewWriter(w)
	table.Header("Network", "Chain ID", "RPC URL", "Verifier URL", "API Key")
	if err := table.Append([]string{
		network,
		cfg.ChainID.String(),
		cfg.RPCURL,
		cfg.VerifierURL,
		utils.MaskSecret(cfg.EtherscanAPIKey),
	}); err != nil {
		return err
	}
	return table.Render()
}

// PrintInvocation prints the command that would run, with secrets masked,
// followed by the names of the variables set for it
func PrintInvocation(w io.Writer, inv *models.Invocation) error {
	table := tablewriter.NewWriter(w)
	table.Header("Key", "Value")
	rows := [][]string{
		{"Program", inv.Program},
		{"Dir", inv.Dir},
	}
	for i, a := range utils.RedactArgs(inv.Args, inv.Secrets...) {
		rows = append(rows, []string{fmt.Sprintf("Arg %d", i), a})
	}
	for _, k := range inv.EnvKeys() {
		rows = append(rows, []string{"Env", k})
	}
	for _, r := range rows {
		if err := table.Append(r); err != nil {
			return err
		}
	}
	return table.Render()
}

// PrintDeploymentSummary prints one row describing a finished deployment
func PrintDeploymentSummary(w io.Writer, req *models.DeployRequest, res *models.InvocationResult) error {
	table := tablewriter.NewWriter(w)
	table.Header("Network", "Script", "Verified", "Vault", "Exit Code", "Elapsed")
	vault := "-"
	if req.IsVaultDeployment() {
		vault = req.CurrencySymbol()
	}
	if err := table.Append([]string{
		req.Network(),
		req.FQN(),
		fmt.Sprintf("%t", req.Verify()),
		vault,
		fmt.Sprintf("%d", res.ExitCode),
		res.Elapsed.Round(time.Millisecond).String(),
	}); err != nil {
		return err
	}
	return table.Render()
}
