package collector

import (
	"context"
	"os"
	"strings"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"

	"sysmon-bot/models"
)

// hasDockerSocket reports whether the local Docker daemon is reachable.
func hasDockerSocket() bool {
	_, err := os.Stat("/var/run/docker.sock")
	return err == nil
}

// Containers lists all containers (running and stopped). Returns nil on
// hosts without Docker.
func (c *Collector) Containers(ctx context.Context) []models.ContainerInfo {
	if !hasDockerSocket() {
		return nil
	}

	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		c.log.Warnf("docker connect failed: %v", err)
		return nil
	}
	defer cli.Close()

	containers, err := cli.ContainerList(ctx, container.ListOptions{All: true})
	if err != nil {
		c.log.Warnf("container list failed: %v", err)
		return nil
	}

	var result []models.ContainerInfo
	for _, ctr := range containers {
		name := ""
		if len(ctr.Names) > 0 {
			name = strings.TrimPrefix(ctr.Names[0], "/")
		}
		result = append(result, models.ContainerInfo{
			ID:      ctr.ID[:12],
			Name:    name,
			Image:   ctr.Image,
			Status:  ctr.Status,
			State:   ctr.State,
			Created: ctr.Created,
		})
	}
	return result
}
