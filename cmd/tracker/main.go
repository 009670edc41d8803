// Command tracker runs the fixed demo packet sequence through the sensor
// dispatcher and prints one summary line per workout, in input order.
package main

import (
	"fmt"
	"log"

	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/sensor"
)

type packet struct {
	workoutType string
	data        []float64
}

func main() {
	packets := []packet{
		{sensor.CodeSwimming, []float64{720, 1, 80, 25, 40}},
		{sensor.CodeRunning, []float64{15000, 1, 75}},
		{sensor.CodeWalking, []float64{9000, 1, 75, 180}},
	}

	for _, p := range packets {
		training, err := sensor.Decode(p.workoutType, p.data)
		if err != nil {
			log.Fatalf("failed to decode packet %s: %v", p.workoutType, err)
		}
		fmt.Println(domain.Summarize(training).Render())
	}
}
