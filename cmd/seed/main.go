package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"studynotes-be/internal/config"
	"studynotes-be/internal/dto"
	"studynotes-be/internal/pkg/apperror"
	"studynotes-be/internal/pkg/logger"
	"studynotes-be/internal/repository/unitofwork"
	"studynotes-be/internal/service"
	"studynotes-be/pkg/database"

	"github.com/fatih/color"
)

type demoUser struct {
	id    string
	name  string
	notes []dto.CreateNoteRequest
}

func strPtr(s string) *string {
	return &s
}

var demoUsers = []demoUser{
	{
		id:   "demo-ayu",
		name: "Ayu",
		notes: []dto.CreateNoteRequest{
			{Title: "Linear Algebra: Eigenvalues", YoutubeUrl: "https://www.youtube.com/watch?v=PFDu9oVAE-g", PdfUrl: "https://files.example.com/eigen.pdf", ContentCreator: strPtr("3Blue1Brown"), ChannelName: strPtr("3Blue1Brown")},
			{Title: "Intro to Thermodynamics", YoutubeUrl: "https://www.youtube.com/watch?v=4i1MUWJoI0U", PdfUrl: "https://files.example.com/thermo.pdf", ChannelName: strPtr("Crash Course")},
		},
	},
	{
		id:   "demo-budi",
		name: "Budi",
		notes: []dto.CreateNoteRequest{
			{Title: "Organic Chemistry Basics", YoutubeUrl: "https://www.youtube.com/watch?v=B_ketdzJtY8", PdfUrl: "https://files.example.com/organic.pdf", ChannelName: strPtr("Khan Academy")},
		},
	},
}

func main() {
	cfg := config.Load()
	db, err := database.Open(cfg.Database.Driver, cfg.Database.Connection, false)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log := logger.NewNopLogger()
	uowFactory := unitofwork.NewRepositoryFactory(db)

	// Seeding bypasses the listing cache; entries expire on their own TTL.
	users := service.NewUserService(uowFactory, log)
	notes := service.NewNoteService(uowFactory, nil, nil, log)

	for _, u := range demoUsers {
		err := users.Create(ctx, u.id, &dto.CreateUserRequest{
			Name:  u.name,
			Email: fmt.Sprintf("%s@example.com", u.id),
		})
		switch {
		case errors.Is(err, apperror.ErrUserExists):
			color.Yellow("User %s already exists, skipping notes", u.id)
			continue
		case err != nil:
			color.Red("Failed to create user %s: %v", u.id, err)
			os.Exit(1)
		}
		color.Green("Created user %s", u.id)

		for i := range u.notes {
			req := u.notes[i].Normalize()
			if _, err := notes.Create(ctx, u.id, &req); err != nil {
				color.Red("Failed to create note %q: %v", req.Title, err)
				os.Exit(1)
			}
			color.Green("  + %s", req.Title)
		}
	}

	color.Cyan("Seeding finished")
}
