package handlers

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette shared by all styled gkestack output.
var (
	planColorGreen = lipgloss.Color("#22c55e")
	planColorBlue  = lipgloss.Color("#3b82f6")
	planColorDim   = lipgloss.Color("#6b7280")
	planColorWhite = lipgloss.Color("#f9fafb")
)

var (
	planTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(planColorWhite)

	planSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(planColorBlue)

	planDimStyle = lipgloss.NewStyle().
			Foreground(planColorDim)

	planGreenStyle = lipgloss.NewStyle().
			Foreground(planColorGreen)
)

// renderPlan produces a lipgloss-styled deployment plan string.
func renderPlan(path string, plan *Plan) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(planTitleStyle.Render(fmt.Sprintf("  gkestack plan: %s", plan.Cluster.Name)))
	b.WriteString("\n")
	b.WriteString(planDimStyle.Render("  " + strings.Repeat("═", 30)))
	b.WriteString("\n\n")

	b.WriteString(planDimStyle.Render(fmt.Sprintf("  manifest %s", path)))
	b.WriteString("\n\n")

	renderPlanSection(&b, "Deployment", [][2]string{
		{"Project", plan.ProjectID},
		{"Region", plan.Region},
		{"Environment", fmt.Sprintf("%s (%s profile)", plan.Environment, plan.Profile)},
	})

	renderPlanSection(&b, "Network", [][2]string{
		{"VPC", plan.Network.VPC},
		{"Subnet", fmt.Sprintf("%s (%s)", plan.Network.Subnet, plan.Network.PrimaryCIDR)},
		{"Pod range", fmt.Sprintf("%s (%s)", plan.Network.PodRange.Name, plan.Network.PodRange.CIDR)},
		{"Service range", fmt.Sprintf("%s (%s)", plan.Network.ServiceRange.Name, plan.Network.ServiceRange.CIDR)},
		{"Egress", fmt.Sprintf("%s, %s", plan.Network.Router, plan.Network.NAT)},
		{"Firewall", plan.Network.Firewall},
	})

	pool := plan.Cluster.NodePool
	renderPlanSection(&b, "Cluster", [][2]string{
		{"Name", fmt.Sprintf("%s in %s", plan.Cluster.Name, plan.Cluster.Location)},
		{"Master CIDR", plan.Cluster.MasterCIDR},
		{"Workload pool", plan.Cluster.WorkloadPool},
		{"Node pool", fmt.Sprintf("%s: %d-%d x %s, %dGB disk, spot=%t",
			pool.Name, pool.MinNodes, pool.MaxNodes, pool.MachineType, pool.DiskSizeGB, pool.Spot)},
	})

	if len(plan.Secrets) > 0 {
		rows := make([][2]string, 0, len(plan.Secrets))
		for _, s := range plan.Secrets {
			rows = append(rows, [2]string{s.ID, s.Name})
		}
		renderPlanSection(&b, "Secrets", rows)
	}

	if plan.Identity != nil {
		renderPlanSection(&b, "Workload Identity", [][2]string{
			{"Account", plan.Identity.ServiceAccount},
			{"Member", plan.Identity.Member},
			{"Role", plan.Identity.Role},
		})
	}

	if len(plan.Labels) > 0 {
		rows := make([][2]string, 0, len(plan.Labels))
		for _, k := range slices.Sorted(maps.Keys(plan.Labels)) {
			rows = append(rows, [2]string{k, plan.Labels[k]})
		}
		renderPlanSection(&b, "Labels", rows)
	}

	b.WriteString(planGreenStyle.Render("  Manifest satisfies the platform policy."))
	b.WriteString("\n")

	return b.String()
}

// renderPlanSection renders one titled key/value section.
func renderPlanSection(b *strings.Builder, title string, rows [][2]string) {
	b.WriteString(planSectionStyle.Render("  " + title))
	b.WriteString("\n")
	b.WriteString(planDimStyle.Render("  " + strings.Repeat("─", 35)))
	b.WriteString("\n")

	for _, row := range rows {
		fmt.Fprintf(b, "    %-14s %s\n", row[0]+":", row[1])
	}
	b.WriteString("\n")
}
