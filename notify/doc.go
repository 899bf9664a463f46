// Package notify provides notification services for pipeline events.
//
// Core types:
//   - Notifier: Interface for sending notifications
//   - Event: Notification event with type, message, and metadata
//   - EventType: Type of event (generated, validated, failed, etc.)
//
// Implementations:
//   - WebhookNotifier: Sends notifications to generic webhooks
//   - LogNotifier: Logs notifications (for testing/debugging)
//   - MultiNotifier: Combines multiple notifiers
//   - NopNotifier: No-op notifier (for testing)
//
// Example usage:
//
//	notifier := notify.NewMultiNotifier(
//	    notify.NewLogNotifier(nil),
//	    notify.NewWebhookNotifier(webhookURL, nil),
//	)
//	err := notifier.Notify(ctx, notify.Event{
//	    Type:      notify.EventProjectCompleted,
//	    ProjectID: projectID,
//	    Message:   "article pipeline completed",
//	})
package notify
