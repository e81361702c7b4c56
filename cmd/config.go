package cmd

import "time"

type Config struct {
	HTTPPort                    string
	DBHost                      string
	DBPort                      string
	DBUser                      string
	DBPassword                  string
	DBName                      string
	DBSslMode                   string
	KafkaHost                   string
	KafkaDeliveryCompletedTopic string
	KafkaStockRestoreTopic      string
	AssignmentJobSchedule       string
	AvailabilityStaleAfter      time.Duration
}
