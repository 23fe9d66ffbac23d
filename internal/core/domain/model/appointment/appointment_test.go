package appointment_test

import (
	"testing"
	"time"

	"varto/internal/core/domain/model/appointment"
	"varto/internal/core/domain/model/kernel"
	"varto/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func actorAs(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(role, kernel.NewUUID())
	require.NoError(t, err)
	return actor
}

func newTestAppointment(t *testing.T) *appointment.Appointment {
	t.Helper()
	a, err := appointment.NewAppointment(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		time.Now().Add(24*time.Hour),
		45,
		"fade, please",
	)
	require.NoError(t, err)
	return a
}

func TestNewAppointment(t *testing.T) {
	t.Run("should create pending appointment", func(t *testing.T) {
		a := newTestAppointment(t)

		require.NoError(t, a.Validate())
		assert.Equal(t, appointment.Pending, a.Status())
		assert.Equal(t, 45, a.DurationMinutes())
		assert.Equal(t, "fade, please", a.Notes())
		assert.Nil(t, a.RejectionReason())
	})

	t.Run("should reject past slot", func(t *testing.T) {
		_, err := appointment.NewAppointment(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			time.Now().Add(-time.Hour), 45, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject zero slot", func(t *testing.T) {
		_, err := appointment.NewAppointment(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			time.Time{}, 45, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject implausible durations", func(t *testing.T) {
		for _, minutes := range []int{0, -30, 3, 9 * 60} {
			_, err := appointment.NewAppointment(
				kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
				time.Now().Add(time.Hour), minutes, "")

			require.Error(t, err, "duration %d", minutes)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("should require vendor and customer", func(t *testing.T) {
		_, err := appointment.NewAppointment(
			kernel.NewUUID(), kernel.UUID{}, kernel.UUID{},
			time.Now().Add(time.Hour), 45, "")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestAppointment_TransitionTo(t *testing.T) {
	t.Run("vendor confirms and completes", func(t *testing.T) {
		a := newTestAppointment(t)
		vendor := actorAs(t, kernel.RoleVendor)

		require.NoError(t, a.TransitionTo(appointment.Confirmed, vendor))
		assert.Equal(t, appointment.Confirmed, a.Status())

		require.NoError(t, a.TransitionTo(appointment.Completed, vendor))
		assert.Equal(t, appointment.Completed, a.Status())
	})

	t.Run("customer cancels a confirmed appointment", func(t *testing.T) {
		a := newTestAppointment(t)
		require.NoError(t, a.TransitionTo(appointment.Confirmed, actorAs(t, kernel.RoleVendor)))

		require.NoError(t, a.TransitionTo(appointment.Cancelled, actorAs(t, kernel.RoleCustomer)))
		assert.Equal(t, appointment.Cancelled, a.Status())
	})

	t.Run("customer cannot confirm", func(t *testing.T) {
		a := newTestAppointment(t)

		err := a.TransitionTo(appointment.Confirmed, actorAs(t, kernel.RoleCustomer))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrPermissionDenied)
		assert.Equal(t, appointment.Pending, a.Status())
	})

	t.Run("rejecting without a reason is refused", func(t *testing.T) {
		a := newTestAppointment(t)

		err := a.TransitionTo(appointment.Rejected, actorAs(t, kernel.RoleVendor))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, appointment.Pending, a.Status())
	})

	t.Run("terminal appointment admits nothing", func(t *testing.T) {
		a := newTestAppointment(t)
		require.NoError(t, a.TransitionTo(appointment.Cancelled, actorAs(t, kernel.RoleCustomer)))

		err := a.TransitionTo(appointment.Confirmed, actorAs(t, kernel.RoleVendor))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestAppointment_Reject(t *testing.T) {
	t.Run("vendor rejects with a reason", func(t *testing.T) {
		a := newTestAppointment(t)

		require.NoError(t, a.Reject("fully booked that day", actorAs(t, kernel.RoleVendor)))

		assert.Equal(t, appointment.Rejected, a.Status())
		require.NotNil(t, a.RejectionReason())
		assert.Equal(t, "fully booked that day", *a.RejectionReason())
	})

	t.Run("blank reason is refused", func(t *testing.T) {
		a := newTestAppointment(t)

		err := a.Reject("   ", actorAs(t, kernel.RoleVendor))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, appointment.Pending, a.Status())
	})

	t.Run("customer cannot reject", func(t *testing.T) {
		a := newTestAppointment(t)

		err := a.Reject("no", actorAs(t, kernel.RoleCustomer))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	})

	t.Run("confirmed appointment cannot be rejected", func(t *testing.T) {
		a := newTestAppointment(t)
		require.NoError(t, a.TransitionTo(appointment.Confirmed, actorAs(t, kernel.RoleVendor)))

		err := a.Reject("changed my mind", actorAs(t, kernel.RoleVendor))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestRestoreAppointment(t *testing.T) {
	t.Run("should restore rejected appointment with reason", func(t *testing.T) {
		reason := "closed for holidays"
		a, err := appointment.RestoreAppointment(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			time.Now().Add(-48*time.Hour), 30, "",
			appointment.Rejected, &reason)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.Equal(t, appointment.Rejected, a.Status())
		assert.Equal(t, &reason, a.RejectionReason())
	})

	t.Run("should accept past slots from storage", func(t *testing.T) {
		a, err := appointment.RestoreAppointment(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			time.Now().Add(-time.Hour), 30, "",
			appointment.Completed, nil)

		require.NoError(t, err)
		assert.Equal(t, appointment.Completed, a.Status())
	})

	t.Run("should refuse rejected row without reason", func(t *testing.T) {
		_, err := appointment.RestoreAppointment(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			time.Now().Add(time.Hour), 30, "",
			appointment.Rejected, nil)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should refuse reason outside rejected status", func(t *testing.T) {
		reason := "stray"
		_, err := appointment.RestoreAppointment(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			time.Now().Add(time.Hour), 30, "",
			appointment.Confirmed, &reason)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestAppointment_Validate(t *testing.T) {
	t.Run("nil appointment", func(t *testing.T) {
		var a *appointment.Appointment
		assert.ErrorIs(t, a.Validate(), appointment.ErrAppointmentIsNotConstructed)
	})

	t.Run("zero value appointment", func(t *testing.T) {
		assert.Error(t, (&appointment.Appointment{}).Validate())
	})
}
