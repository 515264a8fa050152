package main

import (
	"bondhu/internal/app"
	"bondhu/internal/config"
	"bondhu/internal/model"
	"context"
	"fmt"
	"log"
	"time"
)

// Demo user used by the local frontend
const demoUserID = "demo-user-0001"

// A reflective, creative, somewhat anxious introvert
var demoResponses = model.ResponseMap{
	1: 5, 2: 5, 3: 1,
	4: 3, 5: 2, 6: 3,
	7: 2, 8: 1, 9: 4,
	10: 4, 11: 5, 12: 2,
	13: 4, 14: 4, 15: 2,
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	application, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer application.Close(ctx)

	result, err := application.PersonalityService.SubmitAssessment(ctx, demoUserID, demoResponses)
	if err != nil {
		log.Fatalf("Failed to insert assessment: %v", err)
	}

	fmt.Printf("Successfully created assessment '%s' for user '%s' with scores %+v\n", result.AssessmentID, demoUserID, result.Scores)

	token, err := application.AuthService.IssueUserToken(demoUserID, 30*24*time.Hour)
	if err != nil {
		log.Fatalf("Failed to issue token: %v", err)
	}
	fmt.Printf("Demo user token: %s\n", token.Token)
}
