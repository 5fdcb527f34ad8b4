package notification

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/AlexBreedveld/mycondominium-backend-sub000/internal/infrastructure/config"
	Logger "github.com/AlexBreedveld/mycondominium-backend-sub000/pkg/logger"
)

// NoticePublisher broadcasts community notices to subscribed clients
// (lobby displays, resident apps). Best effort: a failed publish is the
// caller's to log, never to fail a request over.
type NoticePublisher interface {
	PublishNotice(communityID, noticeType string, payload map[string]interface{}) error
}

// Notice topic layout: condo/{community_id}/notices.
const noticeTopicFormat = "condo/%s/notices"

// MQTTNoticeBroker publishes notices over MQTT.
type MQTTNoticeBroker struct {
	client mqtt.Client
	qos    byte
}

// NewMQTTNoticeBroker connects to the configured broker.
func NewMQTTNoticeBroker(cfg *config.Config) (*MQTTNoticeBroker, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.MQTTBrokerURL).
		SetClientID(cfg.MQTTClientID).
		SetUsername(cfg.MQTTUsername).
		SetPassword(cfg.MQTTPassword).
		SetAutoReconnect(true).
		SetConnectTimeout(10 * time.Second)

	opts.OnConnect = func(mqtt.Client) {
		Logger.Info("mqtt connected: %s", cfg.MQTTBrokerURL)
	}
	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		Logger.Warning("mqtt connection lost: %v", err)
	}

	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(10*time.Second) || token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect: %v", token.Error())
	}

	return &MQTTNoticeBroker{client: client, qos: byte(cfg.MQTTQoS)}, nil
}

// PublishNotice sends one notice to a community's topic.
func (b *MQTTNoticeBroker) PublishNotice(communityID, noticeType string, payload map[string]interface{}) error {
	msg := map[string]interface{}{
		"type":      noticeType,
		"timestamp": time.Now().UnixMilli(),
		"payload":   payload,
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	topic := fmt.Sprintf(noticeTopicFormat, communityID)
	token := b.client.Publish(topic, b.qos, false, data)
	if !token.WaitTimeout(5 * time.Second) {
		return fmt.Errorf("mqtt publish to %s timed out", topic)
	}
	return token.Error()
}

// Disconnect closes the broker connection after flushing pending messages.
func (b *MQTTNoticeBroker) Disconnect() {
	b.client.Disconnect(250)
}
