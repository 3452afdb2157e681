package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/hsiehdog/havenmind-front/internal/api"
	"github.com/hsiehdog/havenmind-front/internal/querycache"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("105"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	deltaUpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	deltaDown    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	statusStyles = map[api.ProjectStatus]lipgloss.Style{
		api.ProjectOnline:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		api.ProjectDegraded: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		api.ProjectPaused:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show usage metrics, properties, and recent activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		metrics, err := client.FetchUsageMetrics(ctx)
		if err != nil {
			return err
		}
		cache.Write(querycache.KeyUsage, metrics)

		projects, err := client.FetchProjectSummaries(ctx)
		if err != nil {
			return err
		}
		cache.Write(querycache.KeyProjects, projects)

		activity, err := client.FetchActivityFeed(ctx)
		if err != nil {
			return err
		}
		cache.Write(querycache.KeyActivity, activity)

		fmt.Println(headingStyle.Render("Usage"))
		for _, m := range metrics {
			delta := deltaUpStyle.Render(fmt.Sprintf("+%.0f%%", m.Delta))
			if m.Delta < 0 {
				delta = deltaDown.Render(fmt.Sprintf("%.0f%%", m.Delta))
			}
			fmt.Printf("  %s  %s  %s\n", labelStyle.Render(m.Label), m.Value, delta)
		}

		fmt.Println(headingStyle.Render("Properties"))
		for _, p := range projects {
			status := statusStyles[p.Status].Render(string(p.Status))
			fmt.Printf("  %s [%s] %s — %s\n", p.Name, status, labelStyle.Render(p.UpdatedAt), p.Owner)
		}

		fmt.Println(headingStyle.Render("Recent activity"))
		for _, a := range activity {
			fmt.Printf("  [%s] %s — %s (%s)\n", a.Category, a.Title, a.Description, labelStyle.Render(a.Timestamp))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
