package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/curvefi/curve-lite-deploy/internal/usecase"
	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
)

var labelStyle = color.New(color.Faint)

// DeployRenderer prints the outcome of deploy, register and governance
// commands
type DeployRenderer struct {
	out io.Writer
}

// NewDeployRenderer creates a new deploy renderer
func NewDeployRenderer(out io.Writer) *DeployRenderer {
	return &DeployRenderer{out: out}
}

var _ Renderer[*usecase.DeployResult] = (*DeployRenderer)(nil)

// Render implements Renderer
func (r *DeployRenderer) Render(result *usecase.DeployResult) error {
	path := strings.Join(result.Keys, ".")
	if result.Skipped {
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("%s already deployed at %s (use --force to redeploy)", path, result.Record.Address)))
		return nil
	}
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Deployed %s", path)))
	r.field("Address", result.Contract.Address.Hex())
	if result.Contract.TxHash != (common.Hash{}) {
		r.field("Transaction", result.Contract.TxHash.Hex())
	}
	if result.Record != nil {
		r.field("Version", result.Record.ContractVersion)
		r.field("Source", result.Record.ContractGithubURL)
	}
	return nil
}

// RenderRecord prints a contract registered without deploying
func (r *DeployRenderer) RenderRecord(result *usecase.RecordResult) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Recorded %s", strings.Join(result.Keys, "."))))
	r.field("Address", result.Contract.Address)
	r.field("Version", result.Contract.ContractVersion)
	r.field("Source", result.Contract.ContractGithubURL)
	return nil
}

// RenderGovernance prints the relayer, its agent blueprint and the DAO admins
func (r *DeployRenderer) RenderGovernance(result *usecase.GovernanceResult) error {
	if err := r.Render(result.Agent); err != nil {
		return err
	}
	if err := r.Render(result.Relayer); err != nil {
		return err
	}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, sectionHeaderStyle.Sprint("DAO ADMINS"))
	r.field("Ownership", result.OwnershipAgent.Hex())
	r.field("Parameter", result.ParameterAgent.Hex())
	r.field("Emergency", result.EmergencyAgent.Hex())
	return nil
}

// RenderOwnership prints one line per contract handled by transfer-ownership
func (r *DeployRenderer) RenderOwnership(changes []usecase.OwnershipChange) error {
	if len(changes) == 0 {
		fmt.Fprintln(r.out, "No ownable contracts selected")
		return nil
	}
	for _, c := range changes {
		if c.TxHash == nil {
			fmt.Fprintf(r.out, "  %s %s\n", c.Path, labelStyle.Sprint("(already owned by the DAO)"))
			continue
		}
		fmt.Fprintf(r.out, "  %s %s → transferred in %s\n", c.Path, addressStyle.Sprint(c.Previous.Hex()), c.TxHash.Hex())
	}
	return nil
}

func (r *DeployRenderer) field(label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(r.out, "  %s %s\n", labelStyle.Sprintf("%-12s", label+":"), value)
}
